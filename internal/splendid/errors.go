package splendid

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyActive is returned when a second live Controller is opened
	// while another one holds the instance guard.
	ErrAlreadyActive = errors.New("controller already active - only one instance allowed")

	// ErrSessionInit is returned when the RPC client initialize call does
	// not produce a usable session handle.
	ErrSessionInit = errors.New("rpc client initialization failed")

	// ErrModeNotDetected is returned when the state snapshot does not
	// resolve to a known display mode. This is usually a race with an
	// in-flight callback, not a hard failure: refresh and retry.
	ErrModeNotDetected = errors.New("current display mode not detected")
)

// PackageError reports a failure while locating the vendor package on the
// system. Op is "find" or "path"; Code is the native status code.
type PackageError struct {
	Op   string
	Code uint32
}

func (e *PackageError) Error() string {
	return fmt.Sprintf("package %s failed (error code %d)", e.Op, e.Code)
}

// LoadError reports a failure to load the RPC client library or to bind one
// of its exported entry points.
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SliderRangeError reports a slider value outside the valid range for a
// display mode.
type SliderRangeError struct {
	Mode  string
	Value int
	Min   int
	Max   int
}

func (e *SliderRangeError) Error() string {
	return fmt.Sprintf("invalid slider value %d for %s (expected %d-%d)", e.Value, e.Mode, e.Min, e.Max)
}

// DimmingError reports a nonzero result code from the native set-dimming
// call.
type DimmingError struct {
	Code int64
}

func (e *DimmingError) Error() string {
	return fmt.Sprintf("failed to set dimming (error code %d)", e.Code)
}
