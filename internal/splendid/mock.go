package splendid

import "sync"

// Mock is an in-memory Display for code that must run without the vendor
// RPC client. It applies mode and dimming changes to its own state
// immediately, mirroring what the hardware would eventually report.
type Mock struct {
	mu sync.Mutex
	st State
}

var _ Display = (*Mock)(nil)

// NewMock returns a Mock seeded with a plausible idle state: Normal mode at
// 50% dimming.
func NewMock() *Mock {
	return &Mock{st: State{
		ModeID:        1,
		Dimming:       70,
		ManualSlider:  50,
		EyeCareLevel:  2,
		Grayscale:     4,
		Temperature:   50,
		LastColorMode: 1,
	}}
}

// NewMockWithState returns a Mock starting from the given state.
func NewMockWithState(st State) *Mock {
	return &Mock{st: st}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st
}

func (m *Mock) RefreshSliders() error { return nil }

func (m *Mock) SyncAllSliders() (State, error) {
	return m.State(), nil
}

func (m *Mock) SetDimming(units int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.Dimming = clamp(units, DimmingMin, DimmingMax)
	return nil
}

func (m *Mock) SetDimmingPercent(percent int32) error {
	return m.SetDimming(PercentToDimming(clamp(percent, 0, 100)))
}

func (m *Mock) CurrentMode() (Mode, error) {
	return ResolveMode(m.State())
}

func (m *Mock) SetMode(mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mode.IsEReading() {
		m.st.LastColorMode = m.st.ModeID
		m.st.Monochrome = true
		return nil
	}
	m.st.ModeID = mode.ID()
	m.st.Monochrome = false
	switch mode := mode.(type) {
	case Manual:
		m.st.ManualSlider = mode.Value
	case EyeCare:
		m.st.EyeCareLevel = mode.Level
	}
	return nil
}

func (m *Mock) ToggleEReading() (Mode, error) {
	st := m.State()
	var target Mode
	if st.Monochrome {
		target = RestoreMode(st)
	} else {
		target = EReadingFromState(st)
	}
	if err := m.SetMode(target); err != nil {
		return nil, err
	}
	return target, nil
}
