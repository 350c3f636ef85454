package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tiaforge/internal/config"
	"tiaforge/internal/logger"
)

var (
	configPath string
	logLevel   string
	debug      bool

	cfg *config.Config
	log zerolog.Logger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tiaforge",
		Short:         "Create engineering projects from device spreadsheets",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, path, err := config.Resolve(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			if debug {
				cfg.Logging.Debug = true
			}
			if err := logger.Init(cfg.Logging); err != nil {
				return err
			}
			log = logger.WithComponent("cli")

			if path != "" {
				log.Debug().Str("path", path).Msg("Loaded config")
			} else {
				log.Debug().Msg("No config file found, using defaults")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: search $TIAFORGE_CONFIG, ./tiaforge.yaml, ~/.config/tiaforge)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(initCmd(), createCmd(), planCmd(), runsCmd(), showCmd(), versionsCmd(), serveSimCmd())
	return root
}
