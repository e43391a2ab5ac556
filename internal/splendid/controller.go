// Package splendid bridges the asynchronous, callback-driven Splendid RPC
// client into a synchronous query/command API for display color presets and
// panel dimming.
package splendid

import (
	"errors"
	"time"

	"splendctl/internal/logger"
)

// DefaultSettleInterval is how long query operations wait for the callback
// receiver to deliver an answer before reading the snapshot. The RPC client
// sends no completion signal, so the wait is a heuristic: a slower device
// yields a stale read rather than an error.
const DefaultSettleInterval = 500 * time.Millisecond

// Display is the capability surface shared by the real Controller and the
// Mock.
type Display interface {
	State() State
	RefreshSliders() error
	SyncAllSliders() (State, error)
	SetDimming(units int32) error
	SetDimmingPercent(percent int32) error
	CurrentMode() (Mode, error)
	SetMode(m Mode) error
	ToggleEReading() (Mode, error)
}

// Controller owns a native session and answers queries from the shared state
// snapshot that the callback receiver keeps current. Its methods may be
// called from multiple goroutines; only one live Controller may exist per
// guard (by default, per process).
type Controller struct {
	session Session
	store   *Store
	guard   *Guard
	settle  time.Duration
}

var _ Display = (*Controller)(nil)

// Option configures a Controller before the session is opened.
type Option func(*Controller)

// WithSettleInterval overrides the wait between issuing a query and reading
// the snapshot. Zero disables the wait (used by tests with synchronous
// fakes).
func WithSettleInterval(d time.Duration) Option {
	return func(c *Controller) { c.settle = d }
}

// WithStore injects the state store the session's callback receiver writes
// into.
func WithStore(s *Store) Option {
	return func(c *Controller) { c.store = s }
}

// WithGuard substitutes the process-wide instance guard, letting tests run
// independent controllers without colliding.
func WithGuard(g *Guard) Option {
	return func(c *Controller) { c.guard = g }
}

// Open acquires the instance guard, opens a native session through factory
// and returns a live Controller. If the factory fails the guard is released
// before the error is returned.
func Open(factory SessionFactory, opts ...Option) (*Controller, error) {
	c := &Controller{
		guard:  &defaultGuard,
		settle: DefaultSettleInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = NewStore()
	}

	if !c.guard.TryAcquire() {
		return nil, ErrAlreadyActive
	}

	session, err := factory(c.store)
	if err != nil {
		c.guard.Release()
		return nil, err
	}
	c.session = session
	return c, nil
}

// Close tears down the native session (best effort) and releases the
// instance guard unconditionally.
func (c *Controller) Close() error {
	err := c.session.Close()
	c.guard.Release()
	return err
}

// State returns a snapshot of the last values reported by the device.
func (c *Controller) State() State {
	return c.store.Snapshot()
}

// RefreshSliders issues the three slider queries back to back. It returns
// once the requests are issued; callers that need the refreshed values run a
// full sync instead.
func (c *Controller) RefreshSliders() error {
	if err := c.session.Get(SymGetManual); err != nil {
		return err
	}
	if err := c.session.Get(SymGetEyeCare); err != nil {
		return err
	}
	return c.session.Get(SymGetMonochrome)
}

// SyncAllSliders queries the mode, waits, queries the sliders, waits again
// and returns the merged snapshot.
func (c *Controller) SyncAllSliders() (State, error) {
	if _, err := c.CurrentMode(); err != nil && !errors.Is(err, ErrModeNotDetected) {
		return State{}, err
	}
	if err := c.RefreshSliders(); err != nil {
		return State{}, err
	}
	c.wait()

	st := c.store.Snapshot()
	logger.Debugf("sync complete: dimming=%d (%d%%) manual=%d eyecare=%d e-reading(grayscale=%d, temp=%d)",
		st.Dimming, DimmingToPercent(st.Dimming), st.ManualSlider, st.EyeCareLevel, st.Grayscale, st.Temperature)
	return st, nil
}

// SetDimming sets the panel dimming level in splendid units, clamping the
// input to [40,100]. On success the snapshot's dimming field is written
// immediately instead of waiting for a callback.
func (c *Controller) SetDimming(units int32) error {
	units = clamp(units, DimmingMin, DimmingMax)
	code, err := c.session.SetDimming(units)
	if err != nil {
		return err
	}
	logger.Debugf("set dimming to %d, result: %d", units, code)
	if code != 0 {
		return &DimmingError{Code: code}
	}
	c.store.setDimming(units)
	return nil
}

// SetDimmingPercent sets dimming from a percentage (0-100).
func (c *Controller) SetDimmingPercent(percent int32) error {
	return c.SetDimming(PercentToDimming(clamp(percent, 0, 100)))
}

// CurrentMode queries the device for its mode, waits for the callback to
// land and resolves the snapshot. While the e-reading overlay is active the
// underlying preset id is captured for later restoration.
func (c *Controller) CurrentMode() (Mode, error) {
	if err := c.session.Get(SymGetColorMode); err != nil {
		return nil, err
	}
	c.wait()

	st := c.store.Snapshot()
	if st.Monochrome {
		c.store.setLastColorMode(st.ModeID)
	}
	return ResolveMode(st)
}

// SetMode applies a display mode. EReading goes through the dedicated
// monochrome entry point with its packed value; every other mode goes
// through its preset entry point.
func (c *Controller) SetMode(m Mode) error {
	switch m := m.(type) {
	case EReading:
		return c.session.SetMonochrome(m.packed())
	case Manual:
		return c.session.SetPreset(m.Symbol(), m.Value)
	case EyeCare:
		return c.session.SetPreset(m.Symbol(), m.Level)
	default:
		// Normal and Vivid carry no payload beyond their id.
		return c.session.SetPreset(m.Symbol(), uint8(m.ID()))
	}
}

// ToggleEReading switches the e-reading overlay on or off and returns the
// mode that was applied. Leaving e-reading restores the last recorded
// non-e-reading mode with its slider values intact.
func (c *Controller) ToggleEReading() (Mode, error) {
	current, err := c.CurrentMode()
	if err != nil {
		return nil, err
	}
	logger.Debugf("current mode: %s", current)

	st := c.store.Snapshot()
	var target Mode
	if current.IsEReading() {
		target = RestoreMode(st)
		logger.Infof("switching from e-reading to %s", target)
	} else {
		c.store.setLastColorMode(st.ModeID)
		target = EReadingFromState(st)
		logger.Infof("switching to %s", target)
	}

	if err := c.SetMode(target); err != nil {
		return nil, err
	}
	return target, nil
}

func (c *Controller) wait() {
	if c.settle > 0 {
		time.Sleep(c.settle)
	}
}
