package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/brainbar/internal/capture"
	"github.com/faizmokh/brainbar/internal/layout"
)

var pillStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(0, 1)

// surface is the terminal rendition of the overlay. It is only touched from
// the Bubble Tea goroutine.
type surface struct {
	input   textarea.Model
	scale   Scale
	padding float64
	frame   layout.Frame
	cells   cells
	// termWidth is the last reported terminal width, zero until known.
	termWidth int

	shown      bool
	closed     bool
	keysArmed  bool
	focusArmed bool
}

func newInput() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Brain dump..."
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	return ta
}

// newSurface draws frames at scale. padding is the metrics' content padding.
func newSurface(scale Scale, padding float64) *surface {
	return &surface{input: newInput(), scale: scale, padding: padding}
}

func (s *surface) SetFrame(frame layout.Frame) {
	s.frame = frame
	s.cells = s.scale.cells(frame, s.padding)
	s.input.SetWidth(s.cells.inputWidth)
	s.input.SetHeight(s.cells.inputHeight)
}

func (s *surface) Show()  { s.shown = true }
func (s *surface) Focus() { s.input.Focus() }
func (s *surface) Close() { s.closed = true; s.input.Blur() }

func (s *surface) Text() string           { return s.input.Value() }
func (s *surface) SetText(text string)    { s.input.SetValue(text) }
func (s *surface) InsertText(text string) { s.input.InsertString(text) }

func (s *surface) WatchKeys() capture.Monitor {
	s.keysArmed = true
	return monitor{armed: &s.keysArmed}
}

func (s *surface) WatchFocus() capture.Monitor {
	s.focusArmed = true
	return monitor{armed: &s.focusArmed}
}

func (s *surface) view() string {
	if !s.shown || s.closed {
		return ""
	}
	pill := pillStyle.Width(s.cells.inputWidth + 2).Render(s.input.View())
	left := s.cells.left
	if s.termWidth > 0 {
		left = max(0, min(left, s.termWidth-lipgloss.Width(pill)))
	}
	return lipgloss.NewStyle().
		MarginTop(s.cells.top).
		MarginLeft(left).
		Render(pill)
}

type monitor struct {
	armed *bool
}

func (m monitor) Remove() { *m.armed = false }
