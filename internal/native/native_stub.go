//go:build !windows

// Package native resolves, loads and drives the vendor RPC client DLL,
// exposing it as a splendid.Session.
package native

import (
	"errors"

	"splendctl/internal/splendid"
)

// ErrUnsupported is returned on platforms without the vendor RPC client.
var ErrUnsupported = errors.New("splendid display control requires windows")

// Open fails on non-windows platforms; use splendid.Mock for development.
func Open(store *splendid.Store) (splendid.Session, error) {
	return nil, ErrUnsupported
}
