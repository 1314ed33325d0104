package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/brainbar/internal/capture"
	"github.com/faizmokh/brainbar/internal/hotkey"
	"github.com/faizmokh/brainbar/internal/layout"
	"github.com/faizmokh/brainbar/internal/notify"
)

// Options configure one capture run.
type Options struct {
	Store capture.Store
	// Measurer defaults to wrapping text exactly as the input field does.
	Measurer capture.Measurer
	Bridge   hotkey.Bridge
	Notifier notify.Notifier
	Logger   *slog.Logger
	Now      func() time.Time

	Font    layout.FontSpec
	Metrics layout.Metrics
	// Screen places the overlay only if the terminal never reports its size.
	Screen             layout.Rect
	Scale              Scale
	Chord              hotkey.Chord
	Debounce           time.Duration
	DismissOnFocusLoss bool

	// Input and Output default to the terminal.
	Input  io.Reader
	Output io.Writer
}

// relay forwards messages into a running program from any goroutine.
type relay struct {
	program *tea.Program
}

func (r *relay) send(msg tea.Msg) {
	if r.program != nil {
		r.program.Send(msg)
	}
}

func (r *relay) post(ev capture.Event) {
	r.send(eventMsg{ev: ev})
}

// timerScheduler fires session events from time.AfterFunc goroutines.
type timerScheduler struct {
	send func(tea.Msg)
}

func (s timerScheduler) After(d time.Duration, ev capture.Event) func() {
	t := time.AfterFunc(d, func() { s.send(eventMsg{ev: ev}) })
	return func() { t.Stop() }
}

// Run shows the overlay and blocks until the session ends.
func Run(ctx context.Context, opts Options) (capture.Outcome, error) {
	if opts.Font == (layout.FontSpec{}) {
		opts.Font = DefaultFont
	}
	if opts.Metrics == (layout.Metrics{}) {
		opts.Metrics = layout.DefaultMetrics
	}
	scale := opts.Scale.withFont(opts.Font)
	if opts.Measurer == nil {
		opts.Measurer = newCellMeasurer(scale)
	}

	surf := newSurface(scale, opts.Metrics.ContentPadding)
	r := &relay{}

	session, err := capture.New(ctx, capture.Deps{
		Surface:            surf,
		Store:              opts.Store,
		Measurer:           opts.Measurer,
		Bridge:             opts.Bridge,
		Scheduler:          timerScheduler{send: r.send},
		Post:               r.post,
		Now:                opts.Now,
		Notifier:           opts.Notifier,
		Logger:             opts.Logger,
		Font:               opts.Font,
		Metrics:            opts.Metrics,
		Screen:             opts.Screen,
		Chord:              opts.Chord,
		Debounce:           opts.Debounce,
		DismissOnFocusLoss: opts.DismissOnFocusLoss,
	})
	if err != nil {
		return capture.Outcome{}, err
	}

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(newModel(session, surf), programOpts...)
	r.program = p

	_, runErr := p.Run()
	// The program loop has exited, so the session is ours again.
	session.Abort()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return session.Outcome(), runErr
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return session.Outcome(), ctxErr
	}
	return session.Outcome(), nil
}
