package splendid

import "sync/atomic"

// Entry points exported by the vendor RPC client.
const (
	SymInitialize   = "MyOptRpcClientInitialize"
	SymSetCallback  = "SetCallbackForReturnOptimizationResult"
	SymUninitialize = "MyOptRpcClientUninitialize"

	SymGetColorMode  = "MyOptGetSplendidColorModeFunc"
	SymGetManual     = "MyOptGetSplendidManualModeFunc"
	SymGetEyeCare    = "MyOptGetSplendidEyecareModeFunc"
	SymGetMonochrome = "MyOptGetSplendidMonochromeFunc"

	SymSetPreset     = "MyOptSetSplendidFunc"
	SymSetManual     = "MyOptSetSplendidManualFunc"
	SymSetEyeCare    = "MyOptSetSplendidEyecareFunc"
	SymSetMonochrome = "MyOptSetSplendidMonochromeFunc"
	SymSetDimming    = "MyOptSetSplendidDimmingFunc"
)

// Session is the boundary to the vendor RPC client. Query calls answer only
// through the callback receiver registered at open time; there is no
// completion signal.
//
// The vendor does not document thread safety, but its entry points carry no
// observable shared native state, so a Session is treated as safely callable
// from multiple goroutines. This is an assumption, not a verified guarantee.
type Session interface {
	// Get issues one of the query entry points.
	Get(symbol string) error
	// SetPreset applies a color preset value through the given entry point.
	SetPreset(symbol string, value uint8) error
	// SetMonochrome applies a packed e-reading value.
	SetMonochrome(packed int32) error
	// SetDimming sets panel dimming in splendid units and returns the
	// native result code.
	SetDimming(units int32) (int64, error)
	// Close best-effort uninitializes the native session.
	Close() error
}

// SessionFactory opens a native session whose callback receiver writes into
// the given store.
type SessionFactory func(store *Store) (Session, error)

// Guard is a process-wide exclusivity token. The RPC client supports a
// single session per process, so exactly one live Controller may hold the
// guard at a time.
type Guard struct {
	held atomic.Bool
}

// TryAcquire takes the guard, reporting false if it is already held.
func (g *Guard) TryAcquire() bool {
	return !g.held.Swap(true)
}

// Release frees the guard.
func (g *Guard) Release() {
	g.held.Store(false)
}

// defaultGuard enforces the one-live-controller rule for real sessions.
var defaultGuard Guard
