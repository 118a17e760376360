// logging.go - diagnostic logging for the Virtual Image Processor core
//
// License: GPLv3 or later

package vip

import (
	"log"
	"os"
)

// Logger receives non-fatal diagnostics: unknown register accesses,
// protected-register writes, SPT underflow, bus decode misses. None of
// these are ever fatal — the emulated hardware tolerates misuse
// silently, and Logger exists purely so a host can surface them.
//
// Defaults to stderr. A host embedding vip in a GUI can replace it with
// its own *log.Logger to route diagnostics into an in-app console.
var Logger = log.New(os.Stderr, "vip: ", log.LstdFlags)

func warnf(format string, args ...any) {
	Logger.Printf(format, args...)
}
