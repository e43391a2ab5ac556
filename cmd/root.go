package cmd

import (
	"github.com/spf13/cobra"

	"splendctl/internal/config"
	"splendctl/internal/logger"
	"splendctl/internal/splendid"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "splendctl",
		Short: "splendctl - ASUS Splendid display control",
		Long: `Splendctl drives the ASUS Splendid display service on Windows laptops.
It switches color presets (Normal, Vivid, Manual, Eye Care, E-Reading) and
adjusts panel dimming through the RPC client shipped with ASUS PC Assistant.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			if err := config.Init(); err != nil {
				return err
			}
			if level := config.Get().Logging.LogLevel; level != "" {
				logger.SetLevelFromString(level)
			}
			return nil
		},
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
}

// openController opens the single live controller backed by the vendor RPC
// client, applying the configured settle interval.
func openController() (*splendid.Controller, error) {
	return splendid.Open(openSession,
		splendid.WithSettleInterval(config.Get().SettleInterval()))
}
