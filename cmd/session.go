package cmd

import (
	"splendctl/internal/native"
	"splendctl/internal/splendid"
)

// openSession is the session factory used by all commands. Indirection
// keeps it swappable in command tests.
var openSession splendid.SessionFactory = native.Open
