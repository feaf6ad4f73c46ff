// Package key models the keyboard chords the page builder reacts to.
//
// The builder's shortcut surface is single-chord only (Ctrl/Cmd plus a
// character, or a bare special key); there are no multi-key sequences,
// so a chord is the whole story: one Key, an optional Rune, and a
// modifier mask. Chords have a canonical string form ("Ctrl+C",
// "Cmd+Shift+V", "Delete") used by the keymap and the config file.
package key

import "strings"

// Key identifies a non-character key. Character keys use KeyRune with
// the character in Chord.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyEscape is the Escape key.
	KeyEscape
	// KeyEnter is the Return/Enter key.
	KeyEnter
	// KeyTab is the Tab key.
	KeyTab
	// KeyBackspace is the Backspace key.
	KeyBackspace
	// KeyDelete is the forward Delete key.
	KeyDelete
	// KeySpace is the space bar.
	KeySpace

	// Arrow keys, used by the inspector for outline navigation.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is a character key; the character lives in Chord.Rune.
	KeyRune
)

// String returns the canonical key name.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyRune:
		return "Rune"
	default:
		return "None"
	}
}

// KeyFromName resolves a canonical key name, case-insensitively.
// Returns KeyNone for unknown names.
func KeyFromName(name string) Key {
	switch strings.ToLower(name) {
	case "escape", "esc":
		return KeyEscape
	case "enter", "return":
		return KeyEnter
	case "tab":
		return KeyTab
	case "backspace":
		return KeyBackspace
	case "delete", "del":
		return KeyDelete
	case "space":
		return KeySpace
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	default:
		return KeyNone
	}
}
