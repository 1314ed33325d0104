package layout

import "math"

// Rect is an axis-aligned rectangle in points with a top-left origin; Y grows
// downward.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Frame is the overlay window plus the input field positioned inside it.
// Field coordinates are relative to the window.
type Frame struct {
	Window Rect
	Field  Rect
}

// Metrics holds the fixed dimensions of the overlay, in points.
type Metrics struct {
	Width          float64 `mapstructure:"width"`
	MinHeight      float64 `mapstructure:"min_height"`
	TopOffset      float64 `mapstructure:"top_offset"`
	FieldInset     float64 `mapstructure:"field_inset"`
	FieldTrailing  float64 `mapstructure:"field_trailing"`
	MinFieldHeight float64 `mapstructure:"min_field_height"`
	ContentPadding float64 `mapstructure:"content_padding"`
	FramePadding   float64 `mapstructure:"frame_padding"`
	Threshold      float64 `mapstructure:"threshold"`
}

// DefaultMetrics is a Spotlight-sized pill near the top of the screen.
var DefaultMetrics = Metrics{
	Width:          860,
	MinHeight:      56,
	TopOffset:      140,
	FieldInset:     56,
	FieldTrailing:  16,
	MinFieldHeight: 34,
	ContentPadding: 16,
	FramePadding:   22,
	Threshold:      1,
}

// DefaultScreen is used when the display size is unknown.
var DefaultScreen = Rect{Width: 1280, Height: 800}

// FieldWidth is the width available to wrapped text.
func (m Metrics) FieldWidth() float64 {
	return m.Width - m.FieldInset - m.FieldTrailing
}

// FitScreen narrows m so the overlay is no wider than screen. Insets are kept,
// so the field loses what the window loses.
func FitScreen(m Metrics, screen Rect) Metrics {
	if screen.Width > 0 && m.Width > screen.Width {
		m.Width = screen.Width
	}
	return m
}

// SurfaceHeight derives the field and window heights needed to show a block of
// text that measured textHeight points.
func SurfaceHeight(textHeight float64, m Metrics) (window, field float64) {
	field = math.Max(m.MinFieldHeight, textHeight+m.ContentPadding)
	window = math.Max(m.MinHeight, field+m.FramePadding)
	return window, field
}

// Place returns the launch frame: horizontally centred on screen, TopOffset
// points below its top edge, at the minimum height.
func Place(screen Rect, m Metrics) Frame {
	window := Rect{
		X:      screen.X + (screen.Width-m.Width)/2,
		Y:      screen.Y + m.TopOffset,
		Width:  m.Width,
		Height: m.MinHeight,
	}
	return Frame{Window: window, Field: fieldRect(window.Height, m.MinFieldHeight, m)}
}

// Resize grows or shrinks current to the given window and field heights,
// keeping the top edge, X and width fixed. It reports false, leaving current
// untouched, when the height change does not exceed the metrics threshold.
func Resize(current Frame, window, field float64, m Metrics) (Frame, bool) {
	if math.Abs(window-current.Window.Height) <= m.Threshold {
		return current, false
	}
	next := current
	next.Window.Height = window
	next.Field = fieldRect(window, field, m)
	return next, true
}

func fieldRect(windowHeight, fieldHeight float64, m Metrics) Rect {
	return Rect{
		X:      m.FieldInset,
		Y:      (windowHeight - fieldHeight) / 2,
		Width:  m.FieldWidth(),
		Height: fieldHeight,
	}
}
