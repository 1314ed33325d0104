package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/faizmokh/brainbar/internal/layout"
)

// cellMeasurer measures text by wrapping it the way the input field does, so
// the session sizes the pill to exactly the rows the field shows.
type cellMeasurer struct {
	scale   Scale
	scratch textarea.Model
}

func newCellMeasurer(scale Scale) *cellMeasurer {
	return &cellMeasurer{scale: scale, scratch: newInput()}
}

// Measure returns the wrapped row count of text at maxWidth, in points.
func (c *cellMeasurer) Measure(text string, _ layout.FontSpec, maxWidth float64) float64 {
	if text == "" {
		return 0
	}
	c.scratch.SetWidth(c.scale.columns(maxWidth))
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		c.scratch.SetValue(line)
		rows += c.scratch.LineInfo().Height
	}
	return float64(rows) * c.scale.Row
}
