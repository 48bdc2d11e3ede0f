package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"campusmap/internal/config"
	"campusmap/internal/env"
	"campusmap/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool
	logFile    string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "campusmap",
	Short: "Campus building map: server, terminal viewer and exports",
	Long: `campusmap serves an interactive map of university buildings and
ships a terminal viewer for it.

  campusmap serve          run the map server
  campusmap view           open the terminal viewer against a server
  campusmap export         write a standalone HTML map
  campusmap events tail    follow viewer interaction events`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := env.LoadEnv(); err != nil {
			return fmt.Errorf("loading .env: %w", err)
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// The viewer owns the terminal, so it only logs to a file.
		if cmd.Name() == "view" && logFile == "" {
			logger = zap.NewNop()
			return nil
		}
		var paths []string
		if logFile != "" {
			paths = []string{logFile}
		}
		logger, err = logging.New(verbose, paths...)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(serveCmd, viewCmd, exportCmd, eventsCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
