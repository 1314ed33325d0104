package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/brainbar/internal/capture"
)

// sizeGrace is how long Init waits for the terminal to report its size before
// starting on the configured screen.
const sizeGrace = 250 * time.Millisecond

// eventMsg carries a session event posted from another goroutine.
type eventMsg struct {
	ev capture.Event
}

// startMsg starts a session that is still waiting for a window size.
type startMsg struct{}

// Model adapts a capture session to Bubble Tea.
type Model struct {
	session *capture.Session
	surface *surface
}

func newModel(session *capture.Session, surf *surface) Model {
	return Model{session: session, surface: surf}
}

// Init waits for the first window size. The session is placed on the terminal
// once it is known, or on the configured screen after sizeGrace.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		tea.Tick(sizeGrace, func(time.Time) tea.Msg { return startMsg{} }),
	)
}

// Update routes terminal input into session events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.termWidth = msg.Width
		if m.session.State() == capture.Launching {
			m.session.SetScreen(m.surface.scale.screen(msg.Width, msg.Height))
			m.session.Start()
		}
		return m, nil
	case startMsg:
		m.session.Start()
		return m, m.quitIfClosed()
	case eventMsg:
		m.session.Dispatch(msg.ev)
		return m, m.quitIfClosed()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.BlurMsg:
		if m.surface.focusArmed {
			m.session.Dispatch(capture.FocusLost{})
		}
		return m, m.quitIfClosed()
	case tea.FocusMsg:
		if m.surface.focusArmed {
			m.session.Dispatch(capture.FocusGained{})
		}
		return m, m.quitIfClosed()
	}

	if m.surface.closed {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.surface.input, cmd = m.surface.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.surface.keysArmed {
		if msg.Type == tea.KeyCtrlC {
			m.session.Abort()
			return m, tea.Quit
		}
		return m, m.quitIfClosed()
	}

	switch msg.String() {
	case "enter":
		m.session.Dispatch(capture.KeyEvent{Key: capture.KeyConfirm})
		return m, m.quitIfClosed()
	case "alt+enter", "ctrl+j":
		m.session.Dispatch(capture.KeyEvent{Key: capture.KeyConfirm, Shift: true})
		return m, m.quitIfClosed()
	case "esc", "ctrl+c":
		m.session.Dispatch(capture.KeyEvent{Key: capture.KeyCancel})
		return m, m.quitIfClosed()
	}

	before := m.surface.input.Value()
	var cmd tea.Cmd
	m.surface.input, cmd = m.surface.input.Update(msg)
	if after := m.surface.input.Value(); after != before {
		m.session.Dispatch(capture.TextChanged{Text: after})
	}
	if quit := m.quitIfClosed(); quit != nil {
		return m, quit
	}
	return m, cmd
}

func (m Model) quitIfClosed() tea.Cmd {
	if m.surface.closed {
		return tea.Quit
	}
	return nil
}

// View renders the overlay pill.
func (m Model) View() string {
	return m.surface.view()
}
