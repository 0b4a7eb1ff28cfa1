// internal/cli/root.go
package metricspanel

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mwiater/metricspanel/internal/appconfig"
	"github.com/mwiater/metricspanel/internal/logging"
	"github.com/spf13/cobra"
)

var currentConfig *appconfig.Config

var (
	successText = color.New(color.FgGreen).SprintFunc()
	failureText = color.New(color.FgRed, color.Bold).SprintFunc()
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "metricspanel",
		Short:         "Render AI generation metrics as an embeddable HTML panel",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// flags > environment > config file > defaults
			cfg, err := appconfig.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			currentConfig = &cfg

			if err := logging.Init(cfg.LogFilePath()); err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			if cfg.Debug {
				logging.LogEvent("config loaded: file=%q output=%q fallbackScores=%v", cfg.ConfigPath, cfg.OutputFilePath(), cfg.FallbackScores())
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("logFile", "", "append logs to this file")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newListCmd())
	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failureText("Error:"), err)
		_ = logging.Close()
		os.Exit(1)
	}
}

// GetConfig returns the configuration resolved for the running command.
func GetConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Config{}
	}
	return *currentConfig
}
