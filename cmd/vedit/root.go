package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/vedit/internal/app"
	"github.com/dshills/vedit/internal/config"
	"github.com/dshills/vedit/internal/logging"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	v          *viper.Viper
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{v: config.New()}

	cmd := &cobra.Command{
		Use:   "vedit [file]",
		Short: "A small modal text editor",
		Long: `vedit is a modal text editor for the terminal.

Without a file it starts with an empty scratch document. A file that does
not exist yet is created on the first write.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd.Context(), flags, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "",
		fmt.Sprintf("config file (default %s)", config.DefaultPath()))
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-file", "", "write logs to this file")
	pf.Int("tab-width", 0, "display width of a tab")

	_ = flags.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = flags.v.BindPFlag("log.file", pf.Lookup("log-file"))
	_ = flags.v.BindPFlag("editor.tab_width", pf.Lookup("tab-width"))

	cmd.AddCommand(newHighlightCommand(flags))
	cmd.AddCommand(newConfigCommand())
	return cmd
}

// load reads the configuration with command-line overrides applied.
func (f *globalFlags) load() (config.Config, error) {
	return config.Read(f.v, f.configPath)
}

func runEditor(ctx context.Context, flags *globalFlags, args []string) error {
	cfg, err := flags.load()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := app.NewSession(app.Options{Config: &cfg, Logger: logger})
	if err != nil {
		return err
	}

	opts := []app.TerminalOption{app.WithLogger(logger)}
	if len(args) == 1 {
		if err := session.Open(args[0]); err != nil {
			return err
		}
		watcher, err := app.Watch(session.Path(), app.DefaultDebounce, logger)
		if err != nil {
			logger.Warn("file watching disabled", logging.FieldPath, session.Path(), logging.FieldError, err)
		} else {
			defer watcher.Close()
			opts = append(opts, app.WithWatcher(watcher))
		}
	}

	term, err := app.NewTerminal(session, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := term.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// openLog opens the configured log file. The terminal owns stderr while the
// editor runs, so without a file nothing is logged.
func openLog(cfg config.LogConfig) (*log.Logger, func(), error) {
	if cfg.File == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(f, cfg.Level), func() { _ = f.Close() }, nil
}
