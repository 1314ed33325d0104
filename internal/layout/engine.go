// Package layout measures wrapped note text and derives the overlay geometry
// that fits it.
package layout

import (
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Engine measures wrapped text. It keeps no state between calls.
type Engine struct{}

// Measure wraps text at maxWidth points using font's glyph advances and returns
// the vertical extent of the wrapped block. Identical inputs always produce the
// same height. Empty text measures as zero.
func (Engine) Measure(text string, spec FontSpec, maxWidth float64) float64 {
	if text == "" {
		return 0
	}

	face, err := newFace(spec)
	if err != nil {
		return estimate(text, spec, maxWidth)
	}
	defer face.Close()

	lines := CountLines(face, text, fixed.Int26_6(maxWidth*64))
	return float64(lines) * toPoints(face.Metrics().Height)
}

// LineHeight returns the height of a single laid out line in spec.
func (Engine) LineHeight(spec FontSpec) float64 {
	face, err := newFace(spec)
	if err != nil {
		return lineHeightFallback(spec)
	}
	defer face.Close()
	return toPoints(face.Metrics().Height)
}

// Advance returns the advance width of a digit in spec, the width of one
// character cell when spec is monospaced.
func (Engine) Advance(spec FontSpec) float64 {
	face, err := newFace(spec)
	if err != nil {
		return advanceFallback(spec)
	}
	defer face.Close()
	adv, ok := face.GlyphAdvance('0')
	if !ok {
		return advanceFallback(spec)
	}
	return toPoints(adv)
}

// CountLines reports how many lines text occupies when wrapped at maxWidth.
// Explicit newlines always start a new line; a trailing newline yields an
// empty final line. A non-positive maxWidth disables wrapping.
func CountLines(face font.Face, text string, maxWidth fixed.Int26_6) int {
	count := 0
	for _, paragraph := range strings.Split(text, "\n") {
		count += wrapParagraph(face, paragraph, maxWidth)
	}
	return count
}

func wrapParagraph(face font.Face, paragraph string, maxWidth fixed.Int26_6) int {
	if paragraph == "" || maxWidth <= 0 {
		return 1
	}

	lines := 1
	var lineWidth fixed.Int26_6
	for _, seg := range segments(paragraph) {
		word := strings.TrimRightFunc(seg, unicode.IsSpace)
		wordWidth := font.MeasureString(face, word)
		segWidth := font.MeasureString(face, seg)

		if lineWidth > 0 && lineWidth+wordWidth > maxWidth {
			lines++
			lineWidth = 0
		}

		if lineWidth == 0 && wordWidth > maxWidth {
			// Break inside the word when it cannot fit on a line of its own.
			var width fixed.Int26_6
			for _, r := range word {
				adv := font.MeasureString(face, string(r))
				if width > 0 && width+adv > maxWidth {
					lines++
					width = 0
				}
				width += adv
			}
			lineWidth = width + (segWidth - wordWidth)
			continue
		}

		lineWidth += segWidth
	}
	return lines
}

// segments splits a paragraph into words that carry their trailing
// whitespace, so spaces hang at the end of a line instead of forcing a wrap.
func segments(paragraph string) []string {
	var (
		out     []string
		start   int
		inSpace bool
	)
	for i, r := range paragraph {
		space := unicode.IsSpace(r)
		if inSpace && !space {
			out = append(out, paragraph[start:i])
			start = i
		}
		inSpace = space
	}
	return append(out, paragraph[start:])
}

// estimate is used only if the bundled fonts cannot be opened.
func estimate(text string, spec FontSpec, maxWidth float64) float64 {
	size := spec.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	perLine := int(maxWidth / (size * 0.5))
	lines := 0
	for _, paragraph := range strings.Split(text, "\n") {
		n := len([]rune(paragraph))
		if perLine <= 0 || n == 0 {
			lines++
			continue
		}
		lines += (n + perLine - 1) / perLine
	}
	return float64(lines) * lineHeightFallback(spec)
}

func lineHeightFallback(spec FontSpec) float64 {
	size := spec.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	return size * 1.2
}

func advanceFallback(spec FontSpec) float64 {
	size := spec.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	return size * 0.6
}
