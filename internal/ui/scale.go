package ui

import (
	"math"

	"github.com/faizmokh/brainbar/internal/layout"
)

// DefaultFont is monospaced because the overlay is drawn on a character grid.
var DefaultFont = layout.FontSpec{Family: layout.FamilyMono, Size: layout.DefaultFont.Size}

// Scale converts layout points into terminal cells. A zero field is derived
// from the font.
type Scale struct {
	Col float64 `mapstructure:"col"`
	Row float64 `mapstructure:"row"`
}

// ScaleFor sizes a cell as one digit advance of spec by one line of spec, so a
// column holds one character and a row holds one wrapped line.
func ScaleFor(spec layout.FontSpec) Scale {
	var engine layout.Engine
	return Scale{Col: engine.Advance(spec), Row: engine.LineHeight(spec)}
}

func (s Scale) withFont(spec layout.FontSpec) Scale {
	if s.Col > 0 && s.Row > 0 {
		return s
	}
	derived := ScaleFor(spec)
	if s.Col <= 0 {
		s.Col = derived.Col
	}
	if s.Row <= 0 {
		s.Row = derived.Row
	}
	return s
}

// columns is how many cells fit in width points.
func (s Scale) columns(width float64) int {
	return max(1, int(math.Round(width/s.Col)))
}

// screen is the area of a cols by rows terminal, in points.
func (s Scale) screen(cols, rows int) layout.Rect {
	return layout.Rect{Width: float64(cols) * s.Col, Height: float64(rows) * s.Row}
}

// cells is a frame expressed in terminal cells.
type cells struct {
	left, top     int
	width, height int
	inputWidth    int
	inputHeight   int
}

// cells converts f. The field's content padding holds no text, so it is left
// out of the input height.
func (s Scale) cells(f layout.Frame, padding float64) cells {
	inputHeight := max(1, int(math.Round((f.Field.Height-padding)/s.Row)))
	inputWidth := s.columns(f.Field.Width)
	return cells{
		left:        max(0, int(math.Round(f.Window.X/s.Col))),
		top:         max(0, int(math.Round(f.Window.Y/s.Row))),
		width:       max(inputWidth+4, int(math.Round(f.Window.Width/s.Col))),
		height:      inputHeight + 2,
		inputWidth:  inputWidth,
		inputHeight: inputHeight,
	}
}
