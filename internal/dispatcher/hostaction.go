package dispatcher

import "github.com/draftforge/draftforge/internal/engine/document"

// HostActionType selects how the host store applies a new document.
type HostActionType string

const (
	// ActionSetData replaces the page content through the host's data
	// reducer; the normal path for structural edits.
	ActionSetData HostActionType = "setData"

	// ActionSet replaces the whole editor state, used when loading a
	// document from outside the edit flow.
	ActionSet HostActionType = "set"
)

// HostAction is the value forwarded to the host editor's dispatch
// function after an engine operation produced a new tree.
type HostAction struct {
	// Type selects the host reducer.
	Type HostActionType

	// Data is the new document snapshot.
	Data *document.Document

	// RecordHistory asks the host to push an undo entry.
	RecordHistory bool
}

// DispatchFunc receives host actions. The host editor supplies it.
type DispatchFunc func(HostAction)

// NotifyFunc receives short human-readable toast messages.
type NotifyFunc func(message string)

// ConfirmFunc asks the user a yes/no question and blocks for the
// answer. Used only by bulk delete.
type ConfirmFunc func(prompt string) bool

// DocumentProvider returns the current document. Called at the start
// of every operation, and again inside async completions, so the
// dispatcher never acts on a stale snapshot.
type DocumentProvider func() *document.Document

// FocusFunc reports whether keyboard focus is inside an editable text
// field; shortcuts are suppressed while it returns true.
type FocusFunc func() bool
