package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtlpy/dtlpy-go/internal/config"
)

func init() { //nolint: gochecknoinits
	configShowCmd.Flags().BoolVar(&showJSON, "json", false, "Print as JSON instead of TOML")

	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	showJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if showJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}
)
