package keymap

import "github.com/draftforge/draftforge/internal/input/key"

// Default returns the stock page-builder keymap. Every clipboard and
// component action is bound on both the Ctrl and Cmd layouts so one
// map serves all platforms.
func Default() *Keymap {
	km := New()
	for _, b := range []Binding{
		{Chord: key.MustParse("Ctrl+C"), Action: ActionCopy, Description: "Copy selection"},
		{Chord: key.MustParse("Cmd+C"), Action: ActionCopy, Description: "Copy selection"},
		{Chord: key.MustParse("Ctrl+X"), Action: ActionCut, Description: "Cut selection"},
		{Chord: key.MustParse("Cmd+X"), Action: ActionCut, Description: "Cut selection"},
		{Chord: key.MustParse("Ctrl+V"), Action: ActionPaste, Description: "Paste"},
		{Chord: key.MustParse("Cmd+V"), Action: ActionPaste, Description: "Paste"},
		{Chord: key.MustParse("Ctrl+A"), Action: ActionSelectAll, Description: "Select all (twice for nested)"},
		{Chord: key.MustParse("Cmd+A"), Action: ActionSelectAll, Description: "Select all (twice for nested)"},
		{Chord: key.MustParse("Ctrl+D"), Action: ActionDuplicate, Description: "Duplicate selection"},
		{Chord: key.MustParse("Cmd+D"), Action: ActionDuplicate, Description: "Duplicate selection"},
		{Chord: key.MustParse("Delete"), Action: ActionDelete, Description: "Delete selection"},
		{Chord: key.MustParse("Backspace"), Action: ActionDelete, Description: "Delete selection"},
		{Chord: key.MustParse("Escape"), Action: ActionClearSelection, Description: "Clear selection"},
	} {
		km.Bind(b)
	}
	return km
}
