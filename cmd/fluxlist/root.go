package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/fluxlist/internal/app"
	"github.com/dshills/fluxlist/internal/backend"
	"github.com/dshills/fluxlist/internal/config"
	"github.com/dshills/fluxlist/internal/logging"
)

// flags holds command-line overrides. A flag only replaces the resolved
// setting when it was given explicitly.
type flags struct {
	configPath string
	logLevel   string
	logFile    string
	name       string
	idStrategy string
	metrics    bool
	trace      bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "fluxlist",
		Short:         "A list of items driven by one-way data flow",
		Long:          "fluxlist shows a list and a button. Each press adds an item through\nthe action creator, dispatcher and store.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return runInteractive(cfg)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "path to a TOML or YAML config file")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&f.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&f.name, "name", "", "name given to new items")
	pf.StringVar(&f.idStrategy, "id-strategy", "", "item id strategy (counter, uuid)")
	pf.BoolVar(&f.metrics, "metrics", false, "log dispatch metrics on exit")
	pf.BoolVar(&f.trace, "trace", false, "log every dispatched action")

	root.AddCommand(replayCmd(&f), versionCmd())
	return root
}

// resolve layers changed flags over the file and environment settings.
func (f *flags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Resolve(f.configPath)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if changed("log-file") {
		cfg.Logging.File = f.logFile
	}
	if changed("name") {
		cfg.Item.DefaultName = f.name
	}
	if changed("id-strategy") {
		cfg.Item.IDStrategy = f.idStrategy
	}
	if changed("metrics") {
		cfg.Dispatcher.Metrics = f.metrics
	}
	if changed("trace") {
		cfg.Dispatcher.Trace = f.trace
	}
	return cfg, cfg.Validate()
}

// openLogger returns the configured file logger, or fallback when no file
// is set.
func openLogger(cfg config.Config, fallback func(logging.Level) *logging.Logger) (*logging.Logger, io.Closer, error) {
	level := logging.ParseLevel(cfg.Logging.Level)
	if cfg.Logging.File != "" {
		return logging.OpenFile(cfg.Logging.File, level)
	}
	return fallback(level), io.NopCloser(nil), nil
}

func runInteractive(cfg config.Config) error {
	// The terminal owns stdout and stderr while the UI is up.
	logger, closer, err := openLogger(cfg, func(logging.Level) *logging.Logger {
		return logging.Null()
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	application, err := app.New(app.Options{Config: cfg, Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := application.SetBackend(term); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		return err
	}
	return nil
}
