// Package capture drives a single note-capture session: it places the
// overlay, resizes it as text grows, and ends in exactly one commit or
// discard.
package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/faizmokh/brainbar/internal/hotkey"
	"github.com/faizmokh/brainbar/internal/layout"
	"github.com/faizmokh/brainbar/internal/notify"
)

// DefaultDebounce is how long focus must stay lost before the session
// dismisses itself.
const DefaultDebounce = 100 * time.Millisecond

// Monitor is an armed event source. Remove must be safe to call repeatedly.
type Monitor interface {
	Remove()
}

// Surface is the presentation the session drives.
type Surface interface {
	SetFrame(frame layout.Frame)
	Show()
	Focus()
	Text() string
	SetText(text string)
	InsertText(text string)
	Close()
	WatchKeys() Monitor
	WatchFocus() Monitor
}

// Store persists a committed note.
type Store interface {
	Append(ctx context.Context, note string, at time.Time) error
}

// Measurer reports the wrapped height of text in points.
type Measurer interface {
	Measure(text string, spec layout.FontSpec, maxWidth float64) float64
}

// Scheduler delivers ev after d unless the returned cancel func runs first.
type Scheduler interface {
	After(d time.Duration, ev Event) (cancel func())
}

// Deps are the collaborators and settings of a session. Surface, Store,
// Measurer, Scheduler and Post are required.
type Deps struct {
	Surface   Surface
	Store     Store
	Measurer  Measurer
	Bridge    hotkey.Bridge
	Scheduler Scheduler
	// Post hands an event to the UI goroutine. It must be safe to call from
	// any goroutine.
	Post     func(Event)
	Now      func() time.Time
	Notifier notify.Notifier
	Logger   *slog.Logger

	Font               layout.FontSpec
	Metrics            layout.Metrics
	Screen             layout.Rect
	Chord              hotkey.Chord
	Debounce           time.Duration
	DismissOnFocusLoss bool
}

// Outcome is how a session ended. Committed means the session took the
// commit path; Err is set when the note could not be written.
type Outcome struct {
	Committed bool
	Discarded bool
	Note      string
	Err       error
}

// Session is the capture state machine. Apart from the callback handed to
// the hotkey bridge, every method must run on the UI goroutine.
type Session struct {
	ctx    context.Context
	deps   Deps
	logger *slog.Logger

	state   State
	initial layout.Frame
	frame   layout.Frame

	generation     uint64
	cancelDebounce func()

	keys       Monitor
	focus      Monitor
	chordArmed bool

	outcome Outcome
}

// New validates deps, fills in defaults and returns a session in Launching.
func New(ctx context.Context, deps Deps) (*Session, error) {
	switch {
	case deps.Surface == nil:
		return nil, errors.New("capture: surface is required")
	case deps.Store == nil:
		return nil, errors.New("capture: store is required")
	case deps.Measurer == nil:
		return nil, errors.New("capture: measurer is required")
	case deps.Scheduler == nil:
		return nil, errors.New("capture: scheduler is required")
	case deps.Post == nil:
		return nil, errors.New("capture: post is required")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if deps.Bridge == nil {
		deps.Bridge = hotkey.Nop{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Font == (layout.FontSpec{}) {
		deps.Font = layout.DefaultFont
	}
	if deps.Metrics == (layout.Metrics{}) {
		deps.Metrics = layout.DefaultMetrics
	}
	if deps.Screen.Width <= 0 || deps.Screen.Height <= 0 {
		deps.Screen = layout.DefaultScreen
	}
	if deps.Debounce <= 0 {
		deps.Debounce = DefaultDebounce
	}

	return &Session{
		ctx:    ctx,
		deps:   deps,
		logger: deps.Logger.With("component", "capture"),
		state:  Launching,
	}, nil
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Frame returns the geometry last applied to the surface.
func (s *Session) Frame() layout.Frame { return s.frame }

// InitialFrame returns the launch geometry.
func (s *Session) InitialFrame() layout.Frame { return s.initial }

// Outcome is final once State is Terminated.
func (s *Session) Outcome() Outcome { return s.outcome }

// Metrics returns the overlay dimensions in effect.
func (s *Session) Metrics() layout.Metrics { return s.deps.Metrics }

// SetScreen replaces the display area before Start, narrowing the overlay when
// the screen is smaller than it. It does nothing once the session has started.
func (s *Session) SetScreen(screen layout.Rect) {
	if s.state != Launching || screen.Width <= 0 || screen.Height <= 0 {
		return
	}
	s.deps.Screen = screen
	s.deps.Metrics = layout.FitScreen(s.deps.Metrics, screen)
}

// Start shows the surface at its launch geometry and arms every event source.
func (s *Session) Start() {
	if s.state != Launching {
		return
	}

	s.initial = layout.Place(s.deps.Screen, s.deps.Metrics)
	s.frame = s.initial
	s.deps.Surface.SetFrame(s.frame)
	s.deps.Surface.Show()
	s.deps.Surface.Focus()

	s.keys = s.deps.Surface.WatchKeys()
	s.focus = s.deps.Surface.WatchFocus()

	if !s.deps.Chord.IsZero() {
		post := s.deps.Post
		if err := s.deps.Bridge.Register(s.deps.Chord, func() { post(GlobalChord{}) }); err != nil {
			s.logger.Warn("global chord unavailable", "chord", s.deps.Chord.String(), "error", err)
		} else {
			s.chordArmed = true
		}
	}

	s.state = Editing
	s.logger.Debug("session started", "frame", s.frame.Window)
}

// Dispatch applies ev. Events outside Editing are ignored.
func (s *Session) Dispatch(ev Event) {
	if s.state != Editing {
		s.logger.Debug("event ignored", "state", s.state.String(), "event", fmt.Sprintf("%T", ev))
		return
	}

	switch e := ev.(type) {
	case KeyEvent:
		switch e.Key {
		case KeyConfirm:
			if e.Shift {
				s.deps.Surface.InsertText("\n")
				s.relayout(s.deps.Surface.Text())
				return
			}
			s.commit()
		case KeyCancel:
			s.discard("cancel key")
		}
	case CommitRequested:
		s.commit()
	case TextChanged:
		s.relayout(e.Text)
	case GlobalChord:
		s.discard("global chord")
	case FocusLost:
		s.focusLost()
	case FocusGained:
		s.focusGained()
	case DebounceElapsed:
		if e.Generation != s.generation {
			s.logger.Debug("stale debounce ignored", "generation", e.Generation, "current", s.generation)
			return
		}
		s.cancelDebounce = nil
		s.discard("focus lost")
	}
}

// Abort discards a session that has not terminated yet, whatever its phase.
func (s *Session) Abort() {
	if s.state == Terminated {
		return
	}
	s.discard("aborted")
}

func (s *Session) relayout(text string) {
	if text == "" {
		if s.frame != s.initial {
			s.frame = s.initial
			s.deps.Surface.SetFrame(s.frame)
		}
		return
	}

	height := s.deps.Measurer.Measure(text, s.deps.Font, s.deps.Metrics.FieldWidth())
	window, field := layout.SurfaceHeight(height, s.deps.Metrics)
	next, changed := layout.Resize(s.frame, window, field, s.deps.Metrics)
	if !changed {
		return
	}
	s.frame = next
	s.deps.Surface.SetFrame(s.frame)
}

func (s *Session) focusLost() {
	if !s.deps.DismissOnFocusLoss {
		return
	}
	s.stopDebounce()
	s.generation++
	s.cancelDebounce = s.deps.Scheduler.After(s.deps.Debounce, DebounceElapsed{Generation: s.generation})
}

func (s *Session) focusGained() {
	s.generation++
	s.stopDebounce()
}

func (s *Session) stopDebounce() {
	if s.cancelDebounce != nil {
		s.cancelDebounce()
		s.cancelDebounce = nil
	}
}

func (s *Session) commit() {
	s.state = Committing

	note := strings.TrimSpace(s.deps.Surface.Text())
	if note == "" {
		s.discard("empty note")
		return
	}

	at := s.deps.Now()
	s.outcome.Committed = true
	s.outcome.Note = note
	if err := s.deps.Store.Append(s.ctx, note, at); err != nil {
		s.outcome.Err = err
		s.logger.Error("note not saved", "error", err)
		if nerr := s.deps.Notifier.Notify(s.ctx, "Note not saved", err.Error()); nerr != nil {
			s.logger.Warn("notification failed", "error", nerr)
		}
	} else {
		s.logger.Info("note saved", "at", at.Format(time.RFC3339), "bytes", len(note))
	}
	s.terminate()
}

func (s *Session) discard(reason string) {
	s.state = Discarding
	s.outcome.Discarded = true
	s.logger.Info("note discarded", "reason", reason)
	s.terminate()
}

func (s *Session) terminate() {
	s.stopDebounce()

	if s.keys != nil {
		s.keys.Remove()
		s.keys = nil
	}
	if s.focus != nil {
		s.focus.Remove()
		s.focus = nil
	}
	if s.chordArmed {
		s.chordArmed = false
		if err := s.deps.Bridge.Unregister(); err != nil {
			s.logger.Warn("unregister global chord", "error", err)
		}
	}

	s.deps.Surface.Close()
	s.state = Terminated
}
