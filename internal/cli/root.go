package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/barky/internal/app"
	"github.com/MrSnakeDoc/barky/internal/config"
	"github.com/MrSnakeDoc/barky/internal/logger"
)

// session holds the global flags and the App opened for one subcommand run.
type session struct {
	store    string
	dbPath   string
	logLevel string

	app *app.App
}

// NewRootCmd builds the barky command tree.
func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "barky",
		Short: "Manage bookmarks from the command line",
		Long: `barky stores bookmarks (title, url, notes, date added) in SQLite or Redis.

Configuration comes from BARKY_* environment variables; --store, --db and
--log-level override them for a single invocation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&s.store, "store", "", "storage engine: sqlite or redis (env BARKY_STORE)")
	root.PersistentFlags().StringVar(&s.dbPath, "db", "", "sqlite database path (env BARKY_SQLITE_PATH)")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "debug, info, warn or error (env BARKY_LOG_LEVEL)")

	root.AddCommand(
		newAddCmd(s),
		newGetCmd(s),
		newEditCmd(s),
		newDeleteCmd(s),
		newListCmd(s),
		newImportCmd(s),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// run opens the store before fn and closes it afterwards, even when fn fails.
func (s *session) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err := s.open(cmd); err != nil {
			return err
		}
		defer func() {
			if cerr := s.close(); err == nil {
				err = cerr
			}
		}()
		return fn(cmd, args)
	}
}

func (s *session) open(cmd *cobra.Command) error {
	cfg := config.Load()
	if s.store != "" {
		cfg.Store = s.store
	}
	if s.dbPath != "" {
		cfg.SQLitePath = s.dbPath
	}
	if s.logLevel != "" {
		cfg.LogLevel = s.logLevel
	}

	log := logger.New(cfg.LogLevel, cfg.PrettyLog).With(logger.String("cmd", cmd.Name()))

	a, err := app.New(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	s.app = a
	return nil
}

func (s *session) close() error {
	if s.app == nil {
		return nil
	}
	err := s.app.Close()
	s.app = nil
	return err
}

func (s *session) repo() app.Repository { return s.app.Repository() }
func (s *session) log() logger.Logger   { return s.app.Logger() }

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bookmark id %q", arg)
	}
	if id <= 0 {
		return 0, errors.New("bookmark id must be positive")
	}
	return id, nil
}
