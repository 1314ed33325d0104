// Package hotkey delivers a global key chord to a running capture session.
package hotkey

import (
	"errors"
	"fmt"
	"strings"
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModSuper
)

var modifierNames = []struct {
	mod   Modifier
	names []string
}{
	{ModCtrl, []string{"ctrl", "control"}},
	{ModAlt, []string{"alt", "option", "opt"}},
	{ModShift, []string{"shift"}},
	{ModSuper, []string{"super", "cmd", "command", "meta", "win"}},
}

// ErrInvalidChord is returned for chords that cannot be parsed.
var ErrInvalidChord = errors.New("invalid chord")

// Chord is a modifier combination plus one designated key.
type Chord struct {
	Mods Modifier
	Key  string
}

// ParseChord reads chords such as "ctrl+shift+space". Modifier names are case
// insensitive and may appear in any order; the key must come last.
func ParseChord(input string) (Chord, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return Chord{}, fmt.Errorf("%w: empty", ErrInvalidChord)
	}

	parts := strings.Split(input, "+")
	key := strings.TrimSpace(parts[len(parts)-1])
	if key == "" {
		return Chord{}, fmt.Errorf("%w: %q has no key", ErrInvalidChord, input)
	}
	if _, isMod := lookupModifier(key); isMod {
		return Chord{}, fmt.Errorf("%w: %q ends with a modifier", ErrInvalidChord, input)
	}

	var chord Chord
	for _, part := range parts[:len(parts)-1] {
		mod, ok := lookupModifier(strings.TrimSpace(part))
		if !ok {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidChord, part)
		}
		chord.Mods |= mod
	}
	chord.Key = key
	return chord, nil
}

// MustParseChord is ParseChord for compile-time constants.
func MustParseChord(input string) Chord {
	chord, err := ParseChord(input)
	if err != nil {
		panic(err)
	}
	return chord
}

// String renders the chord canonically: ctrl, alt, shift, super, then key.
func (c Chord) String() string {
	var parts []string
	for _, m := range modifierNames {
		if c.Mods&m.mod != 0 {
			parts = append(parts, m.names[0])
		}
	}
	return strings.Join(append(parts, c.Key), "+")
}

// IsZero reports whether no chord is configured.
func (c Chord) IsZero() bool {
	return c.Key == ""
}

func lookupModifier(name string) (Modifier, bool) {
	for _, m := range modifierNames {
		for _, n := range m.names {
			if n == name {
				return m.mod, true
			}
		}
	}
	return 0, false
}
