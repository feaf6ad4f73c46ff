// Package keymap maps keyboard chords to editor actions. The default
// map covers the page-builder shortcut surface on both Ctrl and Cmd
// layouts; the config file can rebind any action.
package keymap

import (
	"fmt"

	"github.com/draftforge/draftforge/internal/input/key"
)

// Action names an editor operation a chord can trigger.
type Action string

// The page-builder action set.
const (
	// ActionCopy copies the selection to the clipboard.
	ActionCopy Action = "clipboard.copy"
	// ActionCut copies the selection and removes it from the tree.
	ActionCut Action = "clipboard.cut"
	// ActionPaste inserts the clipboard payload into the tree.
	ActionPaste Action = "clipboard.paste"
	// ActionDuplicate clones the selection in place.
	ActionDuplicate Action = "component.duplicate"
	// ActionDelete removes the selection from the tree.
	ActionDelete Action = "component.delete"
	// ActionSelectAll selects all root components, then everything.
	ActionSelectAll Action = "selection.all"
	// ActionClearSelection empties the selection.
	ActionClearSelection Action = "selection.clear"
)

// ActionNone is returned when a chord resolves to nothing.
const ActionNone Action = ""

// Binding pairs one chord with the action it triggers.
type Binding struct {
	// Chord is the key combination.
	Chord key.Chord

	// Action is the operation to run.
	Action Action

	// Description documents the binding for help output.
	Description string
}

// Keymap resolves chords to actions.
type Keymap struct {
	bindings map[string]Binding
}

// New returns an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[string]Binding)}
}

// Bind adds or replaces the binding for a chord.
func (km *Keymap) Bind(b Binding) {
	km.bindings[b.Chord.String()] = b
}

// BindSpec parses a chord specification and binds it to an action.
func (km *Keymap) BindSpec(spec string, action Action) error {
	chord, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("keymap: binding %q: %w", spec, err)
	}
	km.Bind(Binding{Chord: chord, Action: action})
	return nil
}

// Rebind removes every chord bound to action and binds the given
// specifications instead. Used for config overrides.
func (km *Keymap) Rebind(action Action, specs ...string) error {
	for chordStr, b := range km.bindings {
		if b.Action == action {
			delete(km.bindings, chordStr)
		}
	}
	for _, spec := range specs {
		if err := km.BindSpec(spec, action); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the action bound to a chord, or ActionNone.
func (km *Keymap) Resolve(chord key.Chord) Action {
	b, ok := km.bindings[chord.String()]
	if !ok {
		return ActionNone
	}
	return b.Action
}

// Bindings returns all bindings, for help display.
func (km *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(km.bindings))
	for _, b := range km.bindings {
		out = append(out, b)
	}
	return out
}

// Len returns the number of bound chords.
func (km *Keymap) Len() int {
	return len(km.bindings)
}
