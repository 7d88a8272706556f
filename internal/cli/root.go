package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akyairhashvil/destboard/internal/board"
	"github.com/akyairhashvil/destboard/internal/config"
	"github.com/akyairhashvil/destboard/internal/models"
	"github.com/akyairhashvil/destboard/internal/tui"
	"github.com/akyairhashvil/destboard/internal/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type App struct {
	Config  config.Client
	NoColor bool
	JSON    bool

	envErr   error
	logger   *log.Logger
	closeLog func() error

	// replaced in tests
	newService func(cfg config.Client, logger log.FieldLogger) (board.Service, error)
	runTUI     func(ctx context.Context, svc board.Service, opts tui.Options) error
}

func newApp() *App {
	cfg, err := config.FromEnv(nil)
	return &App{
		Config: cfg,
		envErr: err,
		newService: func(cfg config.Client, logger log.FieldLogger) (board.Service, error) {
			return board.New(cfg, board.WithLogger(logger))
		},
		runTUI: tui.Run,
	}
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Destination board client (TUI + scriptable commands)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  destboard

  # Print the board once
  destboard show --url http://127.0.0.1:8000

  # Mark the person in column 0, row 2 as present/absent
  destboard toggle 0 2

  # Set a destination
  destboard status 1 0 back at 3pm
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if app.envErr != nil {
			return app.envErr
		}
		app.Config.Orientation = strings.ToLower(app.Config.Orientation)
		app.Config.Theme = strings.ToLower(app.Config.Theme)
		if err := app.Config.Validate(); err != nil {
			return err
		}
		return app.openLog(cmd, cmd == cmd.Root())
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog == nil {
			return nil
		}
		return app.closeLog()
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.Config.BaseURL, "url", app.Config.BaseURL, "Board service address (env DESTBOARD_URL)")
	flags.DurationVar(&app.Config.Timeout, "timeout", app.Config.Timeout, "Per-request timeout (env DESTBOARD_TIMEOUT)")
	flags.IntVar(&app.Config.Retries, "retries", app.Config.Retries, "Extra attempts for board reads (env DESTBOARD_RETRIES)")
	flags.DurationVar(&app.Config.RetryBackoff, "retry-backoff", app.Config.RetryBackoff, "Pause between read attempts (env DESTBOARD_RETRY_BACKOFF)")
	flags.StringVar(&app.Config.Orientation, "orientation", app.Config.Orientation, "Server matrix layout: columns|rows (env DESTBOARD_ORIENTATION)")
	flags.StringVar(&app.Config.LogFile, "log", app.Config.LogFile, "Diagnostic log file (env DESTBOARD_LOG)")
	flags.BoolVar(&app.Config.Debug, "debug", app.Config.Debug, "Debug logging (env DEBUG)")
	flags.StringVar(&app.Config.Theme, "theme", app.Config.Theme, "Color theme: default|dracula (env DESTBOARD_THEME)")
	flags.BoolVar(&app.NoColor, "no-color", false, "Disable colors in printed output")
	cmd.Flags().DurationVar(&app.Config.Refresh, "refresh", app.Config.Refresh, "Auto-refresh interval, 0 disables (env DESTBOARD_REFRESH)")

	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newToggleCmd(app))
	cmd.AddCommand(newStatusCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// openLog sends diagnostics to the configured file. The TUI owns the
// terminal, so it falls back to a file in the data dir instead of stderr.
func (app *App) openLog(cmd *cobra.Command, interactive bool) error {
	path := app.Config.LogFile
	if path == "" && interactive {
		path = filepath.Join(util.DataDir(config.AppName), config.LogFileName)
	}
	logger, closeFn, err := util.NewLogger(path, cmd.ErrOrStderr(), app.Config.Debug)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	app.logger = logger
	app.closeLog = closeFn
	return nil
}

func (app *App) service() (board.Service, error) {
	return app.newService(app.Config, app.logger)
}

func runInteractive(cmd *cobra.Command, app *App) error {
	svc, err := app.service()
	if err != nil {
		return err
	}
	return app.runTUI(cmd.Context(), svc, tui.Options{
		Refresh:   app.Config.Refresh,
		Theme:     app.Config.Theme,
		ExportDir: util.ReportsDir(config.AppName),
		Logger:    app.logger,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, tui.VersionLabel())
			return err
		},
	}
}

// userError maps board failures to the short notices users see; the
// transport detail is already in the log.
func userError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, board.ErrFetchFailed):
		return errors.New(config.MsgFetchFailed)
	case errors.Is(err, board.ErrUpdateFailed):
		return errors.New(config.MsgUpdateFailed)
	}
	return err
}

func parseCoord(colArg, rowArg string) (models.Coord, error) {
	col, err := strconv.Atoi(colArg)
	if err != nil || col < 0 {
		return models.Coord{}, fmt.Errorf("invalid column %q", colArg)
	}
	row, err := strconv.Atoi(rowArg)
	if err != nil || row < 0 {
		return models.Coord{}, fmt.Errorf("invalid row %q", rowArg)
	}
	return models.Coord{Col: col, Row: row}, nil
}
