package hotkey

import (
	"os"
	"os/signal"
	"sync"
)

// SignalBridge treats a process signal as the global chord. It is the fallback
// when no session bus is available; the desktop shortcut runs
// `pkill -USR1 brainbar` instead of `brainbar chord`.
type SignalBridge struct {
	bind binding
	sig  os.Signal

	mu   sync.Mutex
	ch   chan os.Signal
	done chan struct{}
}

// NewSignalBridge listens for sig once registered. A nil sig uses
// DefaultSignal.
func NewSignalBridge(sig os.Signal) *SignalBridge {
	if sig == nil {
		sig = DefaultSignal
	}
	return &SignalBridge{sig: sig}
}

func (b *SignalBridge) Register(chord Chord, fn func()) error {
	if err := b.bind.set(chord, fn); err != nil {
		return err
	}

	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, b.sig)

	b.mu.Lock()
	b.ch, b.done = ch, done
	b.mu.Unlock()

	go func() {
		for {
			select {
			case <-ch:
				b.bind.fire(chord)
			case <-done:
				return
			}
		}
	}()
	return nil
}

func (b *SignalBridge) Unregister() error {
	b.bind.clear()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ch == nil {
		return nil
	}
	signal.Stop(b.ch)
	close(b.done)
	b.ch, b.done = nil, nil
	return nil
}
