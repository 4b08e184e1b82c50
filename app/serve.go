package app

import (
	"github.com/spf13/cobra"

	"github.com/dtlpy/dtlpy-go/internal/daemon"
)

func init() { //nolint: gochecknoinits
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode (no graceful shutdown delay)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Override the emulator port")
	serveCmd.Flags().StringVar(&seedFile, "seed", "", "JSON file of setting documents loaded on start")

	rootCmd.AddCommand(serveCmd)
}

var (
	devMode   bool
	servePort int
	seedFile  string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the local settings API emulator",
		PreRun: func(_ *cobra.Command, _ []string) {
			if devMode {
				cfg.DevMode = true
			}

			if servePort != 0 {
				cfg.Emulator.Port = servePort
			}

			if seedFile != "" {
				cfg.Emulator.Seed = seedFile
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Start()
		},
	}
)
