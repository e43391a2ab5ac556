package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle e-reading mode",
	Long: `Toggle the e-reading (monochrome) overlay. Switching it off restores
the color preset that was active before the overlay was applied, with its
slider values intact.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := openController()
		if err != nil {
			return err
		}
		defer ctrl.Close()

		if _, err := ctrl.SyncAllSliders(); err != nil {
			return err
		}

		mode, err := ctrl.ToggleEReading()
		if err != nil {
			return err
		}
		fmt.Printf("Switched to %s\n", mode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
