package hotkey

import (
	"errors"
	"sync"
)

// ErrAlreadyRegistered is returned when a bridge already holds a chord.
var ErrAlreadyRegistered = errors.New("hotkey already registered")

// Bridge connects one global chord to a callback. The callback runs on the
// bridge's own goroutine, never on the caller's, so it must only hand work off.
// Unregister is idempotent and may be called without a prior Register.
type Bridge interface {
	Register(chord Chord, fn func()) error
	Unregister() error
}

// binding is the registration state shared by the bridge implementations.
type binding struct {
	mu    sync.Mutex
	chord Chord
	fn    func()
}

func (b *binding) set(chord Chord, fn func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fn != nil {
		return ErrAlreadyRegistered
	}
	b.chord = chord
	b.fn = fn
	return nil
}

// clear drops the registration and reports whether one existed.
func (b *binding) clear() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	had := b.fn != nil
	b.chord = Chord{}
	b.fn = nil
	return had
}

// fire invokes the callback when chord matches the registration.
func (b *binding) fire(chord Chord) bool {
	b.mu.Lock()
	fn := b.fn
	match := fn != nil && b.chord == chord
	b.mu.Unlock()
	if !match {
		return false
	}
	fn()
	return true
}

// Nop is a bridge that never fires. It backs the "none" hotkey mode.
type Nop struct{}

func (Nop) Register(Chord, func()) error { return nil }
func (Nop) Unregister() error            { return nil }
