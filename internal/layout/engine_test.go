package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func TestMeasureSingleCharacterIsOneLine(t *testing.T) {
	var engine Engine
	lh := engine.LineHeight(DefaultFont)
	require.Greater(t, lh, 0.0)

	assert.Equal(t, lh, engine.Measure("a", DefaultFont, DefaultMetrics.FieldWidth()))
}

func TestMeasureEmptyTextIsZero(t *testing.T) {
	var engine Engine
	assert.Equal(t, 0.0, engine.Measure("", DefaultFont, DefaultMetrics.FieldWidth()))
}

func TestMeasureIsDeterministic(t *testing.T) {
	var engine Engine
	text := "remember to rotate the staging credentials before friday"
	first := engine.Measure(text, DefaultFont, 300)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.Measure(text, DefaultFont, 300))
	}
}

func TestMeasureWrapsOverflowingText(t *testing.T) {
	var engine Engine
	lh := engine.LineHeight(DefaultFont)
	width := DefaultMetrics.FieldWidth()

	long := strings.Repeat("capture ", 40)
	got := engine.Measure(long, DefaultFont, width)

	assert.Greater(t, got, lh)
	lines := got / lh
	assert.InDelta(t, float64(int(lines+0.5)), lines, 1e-9, "height should be a whole number of lines")
}

func TestMeasureBreaksWordsWiderThanTheField(t *testing.T) {
	var engine Engine
	lh := engine.LineHeight(DefaultFont)

	got := engine.Measure(strings.Repeat("x", 200), DefaultFont, DefaultMetrics.FieldWidth())
	assert.GreaterOrEqual(t, got, 2*lh)
}

func TestMeasureCountsExplicitNewlines(t *testing.T) {
	var engine Engine
	lh := engine.LineHeight(DefaultFont)
	width := DefaultMetrics.FieldWidth()

	assert.Equal(t, 2*lh, engine.Measure("a\nb", DefaultFont, width))
	assert.Equal(t, 2*lh, engine.Measure("a\n", DefaultFont, width))
	assert.Equal(t, 3*lh, engine.Measure("a\n\nb", DefaultFont, width))
}

func TestMeasureIsMonotonicInText(t *testing.T) {
	var engine Engine
	text := "an idea that keeps growing as the user types more and more words into the overlay until it wraps several times"

	prev := 0.0
	for i := 1; i <= len(text); i++ {
		got := engine.Measure(text[:i], DefaultFont, 240)
		require.GreaterOrEqual(t, got, prev, "prefix %q shrank", text[:i])
		prev = got
	}
}

func TestMeasureMonoFamilyDiffersFromRegular(t *testing.T) {
	var engine Engine
	mono := FontSpec{Family: FamilyMono, Size: 28}
	text := strings.Repeat("il", 60)

	assert.NotEqual(t,
		engine.Measure(text, mono, 400),
		engine.Measure(text, DefaultFont, 400),
	)
}

func TestSegmentsKeepTrailingWhitespace(t *testing.T) {
	assert.Equal(t, []string{"  ", "hi ", "there"}, segments("  hi there"))
	assert.Equal(t, []string{"one  ", "two "}, segments("one  two "))
}

func TestAdvanceIsOneMonoCell(t *testing.T) {
	engine := Engine{}
	mono := FontSpec{Family: FamilyMono, Size: 28}
	cell := engine.Advance(mono)
	assert.Greater(t, cell, 0.0)
	assert.Less(t, cell, mono.Size)

	// Every glyph of the mono face is one cell wide, so n glyphs need n cells.
	face, err := newFace(mono)
	require.NoError(t, err)
	defer face.Close()
	assert.Equal(t, 10*cell, toPoints(font.MeasureString(face, "iiiiiWWWWW")))
}
