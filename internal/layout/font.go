package layout

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font families bundled with the engine.
const (
	FamilyRegular = "regular"
	FamilyMono    = "mono"
)

// FontSpec names the typeface and point size used to lay out note text.
type FontSpec struct {
	Family string  `mapstructure:"family"`
	Size   float64 `mapstructure:"size"`
}

// DefaultFont matches the overlay's 28pt input field.
var DefaultFont = FontSpec{Family: FamilyRegular, Size: 28}

// Parsed font tables are immutable, so they are shared across measurements.
var (
	parseOnce sync.Once
	families  map[string]*opentype.Font
	parseErr  error
)

func loadFamilies() (map[string]*opentype.Font, error) {
	parseOnce.Do(func() {
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			parseErr = fmt.Errorf("parse go regular: %w", err)
			return
		}
		mono, err := opentype.Parse(gomono.TTF)
		if err != nil {
			parseErr = fmt.Errorf("parse go mono: %w", err)
			return
		}
		families = map[string]*opentype.Font{
			FamilyRegular: regular,
			FamilyMono:    mono,
		}
	})
	return families, parseErr
}

// ValidFamily reports whether name is one of the bundled families.
func ValidFamily(name string) bool {
	return name == FamilyRegular || name == FamilyMono
}

// newFace opens a face for spec. Unknown families fall back to regular.
func newFace(spec FontSpec) (font.Face, error) {
	fams, err := loadFamilies()
	if err != nil {
		return nil, err
	}
	f, ok := fams[spec.Family]
	if !ok {
		f = fams[FamilyRegular]
	}
	size := spec.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func toPoints(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
