package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/barky/internal/sources/seed"
)

func newImportCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file.yaml]",
		Short: "Add or update bookmarks from a YAML seed file",
		Long: `Imports bookmarks from a YAML file. Entries whose id already exists are
updated, the rest are added. Without an argument BARKY_SEED_FILE is used.

File format:
bookmarks:
  - id: 1
    title: Go
    url: https://go.dev
    notes: language home
    date_added: 2024-04-23`,
		Args: cobra.MaximumNArgs(1),
		RunE: s.run(func(cmd *cobra.Command, args []string) error {
			path := s.app.Config().SeedFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no seed file given and BARKY_SEED_FILE is not set")
			}

			res, err := seed.NewImporter(path, s.repo(), s.log()).Import(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d bookmarks (%d added, %d updated)\n",
				res.Added+res.Updated, res.Added, res.Updated)
			return err
		}),
	}
}
