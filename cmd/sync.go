package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"splendctl/internal/splendid"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync state from the hardware and dump the raw snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := openController()
		if err != nil {
			return err
		}
		defer ctrl.Close()

		st, err := ctrl.SyncAllSliders()
		if err != nil {
			return err
		}

		fmt.Printf("mode_id:         %d\n", st.ModeID)
		fmt.Printf("monochrome:      %t\n", st.Monochrome)
		fmt.Printf("dimming:         %d (%d%%)\n", st.Dimming, splendid.DimmingToPercent(st.Dimming))
		fmt.Printf("manual:          %d\n", st.ManualSlider)
		fmt.Printf("eyecare:         %d\n", st.EyeCareLevel)
		fmt.Printf("ereading:        grayscale=%d temp=%d\n", st.Grayscale, st.Temperature)
		fmt.Printf("last_color_mode: %d\n", st.LastColorMode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
