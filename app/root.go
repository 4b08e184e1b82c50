// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/dtlpy/dtlpy-go/internal/config"
	"github.com/dtlpy/dtlpy-go/internal/logger"
)

var (
	configPath string // Path to the configuration directory
	cfg        config.Config

	rootCmd = &cobra.Command{
		Use:   "dtlpy",
		Short: "dtlpy manages platform settings",
		Long: `dtlpy manages feature flags and user settings of the data platform
and serves a local emulator of the platform settings API.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			return logger.Init(cfg.Log)
		},
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "directory of main.toml (default ./etc/)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
