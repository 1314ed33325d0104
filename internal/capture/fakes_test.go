package capture

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/faizmokh/brainbar/internal/hotkey"
	"github.com/faizmokh/brainbar/internal/layout"
)

type fakeMonitor struct{ removed int }

func (m *fakeMonitor) Remove() { m.removed++ }

type fakeSurface struct {
	text    string
	frames  []layout.Frame
	shown   int
	focused int
	closed  int
	keys    *fakeMonitor
	focus   *fakeMonitor
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{keys: &fakeMonitor{}, focus: &fakeMonitor{}}
}

func (s *fakeSurface) SetFrame(f layout.Frame) { s.frames = append(s.frames, f) }
func (s *fakeSurface) Show()                   { s.shown++ }
func (s *fakeSurface) Focus()                  { s.focused++ }
func (s *fakeSurface) Text() string            { return s.text }
func (s *fakeSurface) SetText(text string)     { s.text = text }
func (s *fakeSurface) InsertText(text string)  { s.text += text }
func (s *fakeSurface) Close()                  { s.closed++ }
func (s *fakeSurface) WatchKeys() Monitor      { return s.keys }
func (s *fakeSurface) WatchFocus() Monitor     { return s.focus }

type appendCall struct {
	note string
	at   time.Time
}

type fakeStore struct {
	calls []appendCall
	err   error
}

func (s *fakeStore) Append(_ context.Context, note string, at time.Time) error {
	s.calls = append(s.calls, appendCall{note: note, at: at})
	return s.err
}

// lineMeasurer treats every 40 characters or newline as one 30pt line.
type lineMeasurer struct{}

func (lineMeasurer) Measure(text string, _ layout.FontSpec, _ float64) float64 {
	if text == "" {
		return 0
	}
	lines := 0
	for _, para := range strings.Split(text, "\n") {
		lines += 1 + len(para)/40
	}
	return float64(lines) * 30
}

type scheduled struct {
	delay     time.Duration
	ev        Event
	cancelled bool
}

type fakeScheduler struct {
	tasks []*scheduled
}

func (s *fakeScheduler) After(d time.Duration, ev Event) func() {
	task := &scheduled{delay: d, ev: ev}
	s.tasks = append(s.tasks, task)
	return func() { task.cancelled = true }
}

func (s *fakeScheduler) last() *scheduled {
	if len(s.tasks) == 0 {
		return nil
	}
	return s.tasks[len(s.tasks)-1]
}

type fakeBridge struct {
	fn           func()
	registered   int
	unregistered int
	err          error
}

func (b *fakeBridge) Register(_ hotkey.Chord, fn func()) error {
	if b.err != nil {
		return b.err
	}
	b.registered++
	b.fn = fn
	return nil
}

func (b *fakeBridge) Unregister() error {
	b.unregistered++
	b.fn = nil
	return nil
}

type notification struct{ summary, body string }

type fakeNotifier struct{ sent []notification }

func (n *fakeNotifier) Notify(_ context.Context, summary, body string) error {
	n.sent = append(n.sent, notification{summary, body})
	return nil
}

type harness struct {
	session   *Session
	surface   *fakeSurface
	store     *fakeStore
	scheduler *fakeScheduler
	bridge    *fakeBridge
	notifier  *fakeNotifier
	posted    []Event
}

var fixedNow = time.Date(2025, time.November, 2, 14, 3, 21, 0, time.UTC)

func newHarness(t interface{ Fatalf(string, ...any) }, mutate ...func(*Deps)) *harness {
	h := &harness{
		surface:   newFakeSurface(),
		store:     &fakeStore{},
		scheduler: &fakeScheduler{},
		bridge:    &fakeBridge{},
		notifier:  &fakeNotifier{},
	}
	deps := Deps{
		Surface:            h.surface,
		Store:              h.store,
		Measurer:           lineMeasurer{},
		Bridge:             h.bridge,
		Scheduler:          h.scheduler,
		Post:               func(ev Event) { h.posted = append(h.posted, ev) },
		Now:                func() time.Time { return fixedNow },
		Notifier:           h.notifier,
		Logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		Chord:              hotkey.MustParseChord("ctrl+shift+space"),
		DismissOnFocusLoss: true,
	}
	for _, fn := range mutate {
		fn(&deps)
	}
	s, err := New(context.Background(), deps)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.session = s
	return h
}

// typeText replaces the field contents the way the surface would.
func (h *harness) typeText(text string) {
	h.surface.text = text
	h.session.Dispatch(TextChanged{Text: text})
}

// deliverPosted drains events the bridge posted, as the UI loop would.
func (h *harness) deliverPosted() {
	for len(h.posted) > 0 {
		ev := h.posted[0]
		h.posted = h.posted[1:]
		h.session.Dispatch(ev)
	}
}
