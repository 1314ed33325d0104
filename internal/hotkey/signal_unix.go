//go:build unix

package hotkey

import (
	"os"
	"syscall"
)

// DefaultSignal is the signal SignalBridge listens for.
var DefaultSignal os.Signal = syscall.SIGUSR1
