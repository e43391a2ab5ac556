package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"splendctl/internal/splendid"
)

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Get or set the display mode",
}

var modeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current display mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := openController()
		if err != nil {
			return err
		}
		defer ctrl.Close()

		mode, err := ctrl.CurrentMode()
		if err != nil {
			return err
		}
		fmt.Println(mode)
		return nil
	},
}

var modeNormalCmd = &cobra.Command{
	Use:   "normal",
	Short: "Switch to the Normal preset",
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyMode(splendid.Normal{})
	},
}

var modeVividCmd = &cobra.Command{
	Use:   "vivid",
	Short: "Switch to the Vivid preset",
	RunE: func(cmd *cobra.Command, args []string) error {
		return applyMode(splendid.Vivid{})
	},
}

var modeManualCmd = &cobra.Command{
	Use:   "manual <value>",
	Short: "Switch to Manual with a color temperature value (0-100)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := sliderArg(args[0])
		if err != nil {
			return err
		}
		mode, err := splendid.NewManual(value)
		if err != nil {
			return err
		}
		return applyMode(mode)
	},
}

var modeEyeCareCmd = &cobra.Command{
	Use:   "eyecare <level>",
	Short: "Switch to Eye Care with a filter level (0-4)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := sliderArg(args[0])
		if err != nil {
			return err
		}
		mode, err := splendid.NewEyeCare(level)
		if err != nil {
			return err
		}
		return applyMode(mode)
	},
}

var modeEReadingCmd = &cobra.Command{
	Use:   "ereading <grayscale> [temperature]",
	Short: "Switch to E-Reading with a grayscale level (1-5)",
	Long: `Switch to E-Reading mode. Grayscale runs from 1 (lightest) to 5.
When the temperature is omitted the device's current value is kept.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		grayscale, err := sliderArg(args[0])
		if err != nil {
			return err
		}

		ctrl, err := openController()
		if err != nil {
			return err
		}
		defer ctrl.Close()

		var temperature uint8
		if len(args) == 2 {
			if temperature, err = sliderArg(args[1]); err != nil {
				return err
			}
		} else {
			st, err := ctrl.SyncAllSliders()
			if err != nil {
				return err
			}
			temperature = st.Temperature
		}

		mode, err := splendid.NewEReading(grayscale, temperature)
		if err != nil {
			return err
		}
		if err := ctrl.SetMode(mode); err != nil {
			return err
		}
		fmt.Printf("Switched to %s\n", mode)
		return nil
	},
}

// applyMode opens a controller just long enough to apply the mode.
func applyMode(mode splendid.Mode) error {
	ctrl, err := openController()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.SetMode(mode); err != nil {
		return err
	}
	fmt.Printf("Switched to %s\n", mode)
	return nil
}

func sliderArg(arg string) (uint8, error) {
	v, err := strconv.ParseUint(arg, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: expected a small integer", arg)
	}
	return uint8(v), nil
}

func init() {
	modeCmd.AddCommand(modeGetCmd)
	modeCmd.AddCommand(modeNormalCmd)
	modeCmd.AddCommand(modeVividCmd)
	modeCmd.AddCommand(modeManualCmd)
	modeCmd.AddCommand(modeEyeCareCmd)
	modeCmd.AddCommand(modeEReadingCmd)
	rootCmd.AddCommand(modeCmd)
}
