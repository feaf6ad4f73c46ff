package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors.
var (
	// ErrEmptySpec indicates an empty chord specification.
	ErrEmptySpec = errors.New("key: empty chord specification")

	// ErrInvalidSpec indicates an unparseable chord specification.
	ErrInvalidSpec = errors.New("key: invalid chord specification")
)

// Chord is one key press with its modifiers.
type Chord struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune chords, normalized to lower
	// case so Ctrl+C and Ctrl+Shift+c resolve identically.
	Rune rune

	// Mods contains the active modifier keys.
	Mods Modifier
}

// NewRuneChord creates a chord for a character key.
func NewRuneChord(r rune, mods Modifier) Chord {
	return Chord{Key: KeyRune, Rune: unicode.ToLower(r), Mods: mods}
}

// NewSpecialChord creates a chord for a non-character key.
func NewSpecialChord(k Key, mods Modifier) Chord {
	return Chord{Key: k, Mods: mods}
}

// IsZero returns true for the zero chord.
func (c Chord) IsZero() bool {
	return c.Key == KeyNone && c.Mods == ModNone && c.Rune == 0
}

// String returns the canonical form used as a keymap lookup key:
// "Ctrl+C", "Cmd+Shift+A", "Delete", "x".
func (c Chord) String() string {
	var keyName string
	switch c.Key {
	case KeyRune:
		keyName = strings.ToUpper(string(c.Rune))
	default:
		keyName = c.Key.String()
	}
	if c.Mods == ModNone {
		return keyName
	}
	return c.Mods.String() + "+" + keyName
}

// Parse parses a chord specification like "Ctrl+C", "Cmd+Shift+V",
// "Delete" or "q". Modifier and key names are case-insensitive; all
// parts but the last must be modifiers.
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	if keyPart == "" {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialChord(k, mods), nil
	}
	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		return NewRuneChord(r, mods), nil
	}
	return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a chord specification and panics on error. For
// default keymap tables built from literals.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}
