package capture

// Event is anything the session reacts to. All events reach the session
// through Session.Dispatch on the UI goroutine.
type Event interface {
	event()
}

// Key identifies the keys the session intercepts. Every other key belongs to
// the text field.
type Key int

const (
	KeyConfirm Key = iota + 1
	KeyCancel
)

func (k Key) String() string {
	switch k {
	case KeyConfirm:
		return "confirm"
	case KeyCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// KeyEvent is an intercepted key press. Shift is set when a shift-like
// modifier was held.
type KeyEvent struct {
	Key   Key
	Shift bool
}

// TextChanged carries the field contents after an edit.
type TextChanged struct {
	Text string
}

// FocusLost is sent when the surface resigns input focus.
type FocusLost struct{}

// FocusGained is sent when the surface regains input focus.
type FocusGained struct{}

// GlobalChord is posted by the hotkey bridge.
type GlobalChord struct{}

// DebounceElapsed fires after a focus loss has lasted the debounce window.
// Generation is the focus generation it was scheduled in.
type DebounceElapsed struct {
	Generation uint64
}

// CommitRequested commits without a key press.
type CommitRequested struct{}

func (KeyEvent) event()        {}
func (TextChanged) event()     {}
func (FocusLost) event()       {}
func (FocusGained) event()     {}
func (GlobalChord) event()     {}
func (DebounceElapsed) event() {}
func (CommitRequested) event() {}
