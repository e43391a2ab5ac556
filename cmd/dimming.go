package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"splendctl/internal/config"
	"splendctl/internal/splendid"
)

var dimmingUnits bool

var dimmingCmd = &cobra.Command{
	Use:   "dimming",
	Short: "Get or set panel dimming",
}

var dimmingGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current dimming level",
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
		fmt.Printf("%d%% (%d splendid units)\n", splendid.DimmingToPercent(st.Dimming), st.Dimming)
		return nil
	},
}

var dimmingSetCmd = &cobra.Command{
	Use:   "set <percent>",
	Short: "Set the dimming level as a percentage (0-100)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseInt(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid dimming value %q", args[0])
		}

		ctrl, err := openController()
		if err != nil {
			return err
		}
		defer ctrl.Close()

		if dimmingUnits {
			err = ctrl.SetDimming(int32(value))
		} else {
			err = ctrl.SetDimmingPercent(int32(value))
		}
		if err != nil {
			return err
		}

		st := ctrl.State()
		fmt.Printf("Dimming set to %d%% (%d splendid units)\n",
			splendid.DimmingToPercent(st.Dimming), st.Dimming)
		return nil
	},
}

var dimmingUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Raise dimming by the configured step",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stepDimming(int32(config.Get().Dimming.Step))
	},
}

var dimmingDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Lower dimming by the configured step",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stepDimming(-int32(config.Get().Dimming.Step))
	},
}

// stepDimming syncs the current level and moves it by delta percent,
// clamped to 0-100.
func stepDimming(delta int32) error {
	ctrl, err := openController()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	st, err := ctrl.SyncAllSliders()
	if err != nil {
		return err
	}

	target := splendid.DimmingToPercent(st.Dimming) + delta
	if target > 100 {
		target = 100
	}
	if target < 0 {
		target = 0
	}
	if err := ctrl.SetDimmingPercent(target); err != nil {
		return err
	}
	fmt.Printf("Dimming set to %d%%\n", target)
	return nil
}

func init() {
	dimmingSetCmd.Flags().BoolVar(&dimmingUnits, "units", false, "interpret the value as splendid units (40-100)")
	dimmingCmd.AddCommand(dimmingGetCmd)
	dimmingCmd.AddCommand(dimmingSetCmd)
	dimmingCmd.AddCommand(dimmingUpCmd)
	dimmingCmd.AddCommand(dimmingDownCmd)
	rootCmd.AddCommand(dimmingCmd)
}
