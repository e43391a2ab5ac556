package splendid

import "fmt"

// Mode is one of the five Splendid display modes. Normal, Vivid, Manual and
// EyeCare are mutually exclusive color presets identified by a stable mode
// id; EReading is a monochrome overlay on top of whichever preset was
// active.
type Mode interface {
	// ID is the mode identifier reported by the hardware. EReading has no
	// id of its own and returns -1.
	ID() int32
	// Symbol is the native entry point used to apply the mode.
	Symbol() string
	// IsEReading reports whether the mode is the monochrome overlay.
	IsEReading() bool

	fmt.Stringer
}

// Normal is the default color profile.
type Normal struct{}

func (Normal) ID() int32        { return 1 }
func (Normal) Symbol() string   { return SymSetPreset }
func (Normal) IsEReading() bool { return false }
func (Normal) String() string   { return "Normal" }

// Vivid is the enhanced-saturation profile.
type Vivid struct{}

func (Vivid) ID() int32        { return 2 }
func (Vivid) Symbol() string   { return SymSetPreset }
func (Vivid) IsEReading() bool { return false }
func (Vivid) String() string   { return "Vivid" }

// Manual is the user-adjustable color temperature profile.
type Manual struct {
	// Value is the color temperature slider position (0-100).
	Value uint8
}

// NewManual validates the slider value and returns a Manual mode.
func NewManual(value uint8) (Manual, error) {
	if value > 100 {
		return Manual{}, &SliderRangeError{Mode: "Manual", Value: int(value), Min: 0, Max: 100}
	}
	return Manual{Value: value}, nil
}

func (Manual) ID() int32        { return 6 }
func (Manual) Symbol() string   { return SymSetManual }
func (Manual) IsEReading() bool { return false }
func (m Manual) String() string { return fmt.Sprintf("Manual(%d)", m.Value) }

// EyeCare is the blue-light reduction profile.
type EyeCare struct {
	// Level is the filter strength (0-4).
	Level uint8
}

// NewEyeCare validates the level and returns an EyeCare mode.
func NewEyeCare(level uint8) (EyeCare, error) {
	if level > 4 {
		return EyeCare{}, &SliderRangeError{Mode: "EyeCare", Value: int(level), Min: 0, Max: 4}
	}
	return EyeCare{Level: level}, nil
}

func (EyeCare) ID() int32        { return 7 }
func (EyeCare) Symbol() string   { return SymSetEyeCare }
func (EyeCare) IsEReading() bool { return false }
func (m EyeCare) String() string { return fmt.Sprintf("EyeCare(%d)", m.Level) }

// EReading is the grayscale overlay with adjustable temperature.
type EReading struct {
	// Grayscale is the user-facing grayscale level (1-5). The hardware
	// counts from 0, so one is subtracted when the mode is applied.
	Grayscale uint8
	// Temperature is the raw temperature value.
	Temperature uint8
}

// NewEReading validates the grayscale level and returns an EReading mode.
// The temperature range is device defined and passed through unchecked.
func NewEReading(grayscale, temperature uint8) (EReading, error) {
	if grayscale < 1 || grayscale > 5 {
		return EReading{}, &SliderRangeError{Mode: "EReading grayscale", Value: int(grayscale), Min: 1, Max: 5}
	}
	return EReading{Grayscale: grayscale, Temperature: temperature}, nil
}

// EReadingFromState builds an EReading mode from snapshot values. Snapshot
// values mirror hardware-confirmed state and are not re-validated.
func EReadingFromState(st State) EReading {
	return EReading{Grayscale: st.Grayscale, Temperature: st.Temperature}
}

func (EReading) ID() int32        { return -1 }
func (EReading) Symbol() string   { return SymSetMonochrome }
func (EReading) IsEReading() bool { return true }
func (m EReading) String() string {
	return fmt.Sprintf("EReading(grayscale=%d, temp=%d)", m.Grayscale, m.Temperature)
}

// packed encodes the mode into the single value the monochrome entry point
// expects.
func (m EReading) packed() int32 {
	return int32(m.Grayscale-1)*256 + int32(m.Temperature) - 206
}

// ResolveMode maps a snapshot to the display mode it represents. An
// identifier outside the known set while the overlay is off yields
// ErrModeNotDetected; callers should refresh and retry.
func ResolveMode(st State) (Mode, error) {
	if st.Monochrome {
		return EReadingFromState(st), nil
	}
	switch st.ModeID {
	case 1:
		return Normal{}, nil
	case 2:
		return Vivid{}, nil
	case 6:
		return Manual{Value: st.ManualSlider}, nil
	case 7:
		return EyeCare{Level: st.EyeCareLevel}, nil
	}
	return nil, ErrModeNotDetected
}

// RestoreMode maps the remembered last non-e-reading identifier back to a
// concrete mode, falling back to Normal for anything unknown.
func RestoreMode(st State) Mode {
	switch st.LastColorMode {
	case 2:
		return Vivid{}
	case 6:
		return Manual{Value: st.ManualSlider}
	case 7:
		return EyeCare{Level: st.EyeCareLevel}
	default:
		return Normal{}
	}
}
