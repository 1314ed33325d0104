//go:build !unix

package hotkey

import "os"

// DefaultSignal is the signal SignalBridge listens for.
var DefaultSignal os.Signal = os.Interrupt
