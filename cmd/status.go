package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"splendctl/internal/splendid"
	"splendctl/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current display mode and dimming",
	Long:  `Sync state from the display hardware and show the active mode, panel dimming and slider values.`,
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

		mode, err := splendid.ResolveMode(st)
		if errors.Is(err, splendid.ErrModeNotDetected) {
			// Usually a race with an in-flight report; one more sync
			// settles it.
			if st, err = ctrl.SyncAllSliders(); err != nil {
				return err
			}
			mode, err = splendid.ResolveMode(st)
		}
		if err != nil {
			return err
		}

		fmt.Println(renderStatus(st, mode))
		return nil
	},
}

func renderStatus(st splendid.State, mode splendid.Mode) string {
	var out strings.Builder

	out.WriteString(ui.FormatHeader("DISPLAY STATUS", ""))
	out.WriteString("\n")

	var box strings.Builder
	box.WriteString(ui.SubheaderStyle.Render("Mode: "))
	box.WriteString(ui.InfoStyle.Bold(true).Render(mode.String()))
	if mode.IsEReading() {
		restored := splendid.RestoreMode(st)
		box.WriteString("\n")
		box.WriteString(ui.MutedStyle.Render(fmt.Sprintf("toggles back to %s", restored)))
	}
	box.WriteString("\n")
	box.WriteString(ui.SubheaderStyle.Render("Dimming: "))
	box.WriteString(ui.InfoStyle.Render(fmt.Sprintf("%d%% (%d splendid units)",
		splendid.DimmingToPercent(st.Dimming), st.Dimming)))
	out.WriteString(ui.BoxStyle.Render(box.String()))
	out.WriteString("\n\n")

	out.WriteString(ui.SubheaderStyle.Render("Sliders"))
	out.WriteString("\n")
	out.WriteString(fmt.Sprintf("  manual:    %d\n", st.ManualSlider))
	out.WriteString(fmt.Sprintf("  eye care:  %d\n", st.EyeCareLevel))
	out.WriteString(fmt.Sprintf("  e-reading: grayscale=%d temp=%d\n", st.Grayscale, st.Temperature))

	out.WriteString(ui.Separator(40))
	out.WriteString("\n")
	out.WriteString(ui.SubtleStyle.Render("Use 'splendctl mode <name>' to switch presets"))

	return out.String()
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
