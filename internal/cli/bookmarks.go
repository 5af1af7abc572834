package cli

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/barky/internal/commands"
	"github.com/MrSnakeDoc/barky/internal/domain"
)

// bookmarkFlags are shared by add and edit.
type bookmarkFlags struct {
	id    int64
	title string
	url   string
	notes string
	date  string
}

func (f *bookmarkFlags) register(cmd *cobra.Command, withURL bool) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "bookmark title")
	cmd.Flags().StringVarP(&f.notes, "notes", "n", "", "free text notes")
	cmd.Flags().StringVar(&f.date, "date", "", "date added, YYYY-MM-DD (default today)")
	if withURL {
		cmd.Flags().StringVarP(&f.url, "url", "u", "", "bookmark url")
	}
}

func newAddCmd(s *session) *cobra.Command {
	var f bookmarkFlags

	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Add a bookmark",
		Long: `Adds a new bookmark.

Example:
barky add --title "Go" --notes "language home" https://go.dev`,
		Args: cobra.ExactArgs(1),
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			if f.id < 0 {
				return errors.New("bookmark id must not be negative")
			}

			link, err := validateURL(args[0])
			if err != nil {
				return err
			}

			added := domain.Day(time.Now())
			if f.date != "" {
				if added, err = domain.ParseDate(f.date); err != nil {
					return err
				}
			}

			title := f.title
			if title == "" {
				title = link
			}

			b, err := commands.NewAddBookmarkCommand(s.repo(), s.log()).Execute(cmd.Context(), domain.Bookmark{
				ID:        f.id,
				Title:     title,
				URL:       link,
				Notes:     f.notes,
				DateAdded: added,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added bookmark %d\n", b.ID)
			return err
		}),
	}

	f.register(cmd, false)
	cmd.Flags().Int64Var(&f.id, "id", 0, "explicit bookmark id (default: assigned by the store)")
	return cmd
}

func newGetCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			b, err := commands.NewGetBookmarkCommand(s.repo(), s.log()).Execute(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printBookmark(cmd.OutOrStdout(), b)
		}),
	}
}

func newEditCmd(s *session) *cobra.Command {
	var f bookmarkFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an existing bookmark",
		Long: `Updates the given fields of a bookmark; fields without a flag keep their value.

Example:
barky edit 3 --title "Go dev"`,
		Args: cobra.ExactArgs(1),
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			b, err := commands.NewGetBookmarkCommand(s.repo(), s.log()).Execute(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				b.Title = f.title
			}
			if flags.Changed("notes") {
				b.Notes = f.notes
			}
			if flags.Changed("url") {
				if b.URL, err = validateURL(f.url); err != nil {
					return err
				}
			}
			if flags.Changed("date") {
				if b.DateAdded, err = domain.ParseDate(f.date); err != nil {
					return err
				}
			}

			if err := commands.NewEditBookmarkCommand(s.repo(), s.log()).Execute(ctx, b); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated bookmark %d\n", b.ID)
			return err
		}),
	}

	f.register(cmd, true)
	return cmd
}

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a bookmark (no-op when it does not exist)",
		Args:    cobra.ExactArgs(1),
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := commands.NewDeleteBookmarkCommand(s.repo(), s.log()).Execute(cmd.Context(), domain.Bookmark{ID: id}); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted bookmark %d\n", id)
			return err
		}),
	}
}

func newListCmd(s *session) *cobra.Command {
	var orderBy string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List bookmarks",
		Args:    cobra.NoArgs,
		RunE: s.run(func(cmd *cobra.Command, _ []string) error {
			order, err := domain.ParseOrderBy(orderBy)
			if err != nil {
				return err
			}

			bookmarks, err := commands.NewListBookmarksCommand(s.repo(), s.log(), commands.WithOrderBy(order)).Execute(cmd.Context())
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), bookmarks)
		}),
	}

	cmd.Flags().StringVarP(&orderBy, "order-by", "o", string(domain.DefaultOrderBy), "sort key: date_added or title")
	return cmd
}

func validateURL(raw string) (string, error) {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return "", fmt.Errorf("unable to parse url %q: %w", raw, err)
	}
	return u.String(), nil
}

func printBookmark(w io.Writer, b domain.Bookmark) error {
	_, err := fmt.Fprintf(w, "id:         %d\ntitle:      %s\nurl:        %s\nnotes:      %s\ndate_added: %s\n",
		b.ID, b.Title, b.URL, b.Notes, b.DateAdded.Format(domain.DateLayout))
	return err
}

func printTable(w io.Writer, bookmarks []domain.Bookmark) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE ADDED\tTITLE\tURL")
	for _, b := range bookmarks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", b.ID, b.DateAdded.Format(domain.DateLayout), b.Title, b.URL)
	}
	return tw.Flush()
}
