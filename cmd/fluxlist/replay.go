package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/fluxlist/internal/app"
	"github.com/dshills/fluxlist/internal/logging"
)

func replayCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [file|-]",
		Short: "Dispatch recorded actions and print the resulting items",
		Long: "replay reads one JSON action per line, for example\n\n" +
			`  {"actionType":"ADD_NEW_ITEM","text":{"name":"Marco"}}` + "\n\n" +
			"dispatches each through the store and prints the final list as JSON.\n" +
			"Input is read from stdin when no file is given or the file is \"-\".\n" +
			fmt.Sprintf("Lines may be at most %d bytes.", app.MaxReplayLine),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}

			logger, closer, err := openLogger(cfg, func(level logging.Level) *logging.Logger {
				lc := logging.DefaultConfig()
				lc.Level = level
				lc.Output = cmd.ErrOrStderr()
				return logging.New(lc)
			})
			if err != nil {
				return err
			}
			defer closer.Close()

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open actions: %w", err)
				}
				defer file.Close()
				in = file
			}

			application, err := app.New(app.Options{Config: cfg, Logger: logger})
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			return application.Replay(in, cmd.OutOrStdout())
		},
	}
}
