package splendid

import "sync/atomic"

// State is a point-in-time snapshot of the last values reported by the
// device.
type State struct {
	// ModeID is the current mode identifier (1=Normal, 2=Vivid, 6=Manual,
	// 7=EyeCare).
	ModeID int32
	// Monochrome reports whether the e-reading overlay is active. While
	// true, ModeID still holds the underlying color preset.
	Monochrome bool
	// Dimming is the panel dimming level in splendid units (40-100).
	Dimming int32
	// ManualSlider is the manual mode color temperature value (0-100).
	ManualSlider uint8
	// EyeCareLevel is the eye care blue-light filter level (0-4).
	EyeCareLevel uint8
	// Grayscale is the e-reading grayscale level.
	Grayscale uint8
	// Temperature is the e-reading temperature value.
	Temperature uint8
	// LastColorMode is the last non-e-reading mode identifier, kept for
	// restoration when the overlay is switched off.
	LastColorMode int32
}

// Store holds the device's last-known values. The callback receiver writes
// individual fields; readers take a full snapshot. Each field is an
// independent atomic, so a snapshot taken during a multi-field update can
// mix old and new values. That staleness window is accepted: no two fields
// are causally dependent within a single read.
//
// A Store is injectable rather than process-global so that tests can run
// several controllers side by side.
type Store struct {
	mode        atomic.Int32
	monochrome  atomic.Bool
	dimming     atomic.Int32
	manual      atomic.Int32
	eyecare     atomic.Int32
	grayscale   atomic.Int32
	temperature atomic.Int32
	lastColor   atomic.Int32
}

// NewStore returns a Store seeded with the values assumed before the first
// hardware report arrives.
func NewStore() *Store {
	s := &Store{}
	s.mode.Store(-1)
	s.dimming.Store(-1)
	s.lastColor.Store(1)
	s.manual.Store(50)
	s.eyecare.Store(2)
	s.grayscale.Store(3)
	s.temperature.Store(50)
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	return State{
		ModeID:        s.mode.Load(),
		Monochrome:    s.monochrome.Load(),
		Dimming:       s.dimming.Load(),
		ManualSlider:  uint8(s.manual.Load()),
		EyeCareLevel:  uint8(s.eyecare.Load()),
		Grayscale:     uint8(s.grayscale.Load()),
		Temperature:   uint8(s.temperature.Load()),
		LastColorMode: s.lastColor.Load(),
	}
}

func (s *Store) setDimming(units int32) {
	s.dimming.Store(units)
}

func (s *Store) setLastColorMode(id int32) {
	s.lastColor.Store(id)
}
