package dispatcher

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/draftforge/draftforge/internal/clipboard"
	"github.com/draftforge/draftforge/internal/engine/document"
	"github.com/draftforge/draftforge/internal/engine/locate"
	"github.com/draftforge/draftforge/internal/engine/mutate"
	"github.com/draftforge/draftforge/internal/ident"
	"github.com/draftforge/draftforge/internal/input/key"
	"github.com/draftforge/draftforge/internal/input/keymap"
	"github.com/draftforge/draftforge/internal/selection"
)

// DefaultBulkDeleteThreshold is the selection size at which delete
// asks for confirmation first.
const DefaultBulkDeleteThreshold = 5

// Config wires a dispatcher to its collaborators. Document and
// Dispatch are required; everything else has a sensible default.
type Config struct {
	// Document returns the current document snapshot.
	Document DocumentProvider

	// Dispatch receives the host actions carrying new snapshots.
	Dispatch DispatchFunc

	// Selection is the selection store. Defaults to a fresh store.
	Selection *selection.Store

	// Clipboard is the clipboard transport. Defaults to a transport
	// with an empty source identity.
	Clipboard *clipboard.Transport

	// IDs generates fresh component ids. Defaults to UUIDs.
	IDs ident.Generator

	// Keymap resolves chords to actions. Defaults to keymap.Default.
	Keymap *keymap.Keymap

	// Notify receives toast messages. Defaults to a no-op.
	Notify NotifyFunc

	// Confirm asks for bulk-delete confirmation. Defaults to always
	// confirming.
	Confirm ConfirmFunc

	// EditableFocus suppresses shortcuts while true. Defaults to
	// never suppressing.
	EditableFocus FocusFunc

	// KnownKinds lists the component types the current template can
	// render; pasted components of other types are filtered out. Nil
	// accepts every type.
	KnownKinds []string

	// BulkDeleteThreshold overrides DefaultBulkDeleteThreshold when
	// positive.
	BulkDeleteThreshold int

	// Logger defaults to a nop logger.
	Logger *zap.Logger
}

// Dispatcher routes editor actions to the engine and forwards the
// resulting snapshots to the host.
type Dispatcher struct {
	mu sync.Mutex

	doc      DocumentProvider
	dispatch DispatchFunc
	sel      *selection.Store
	clip     *clipboard.Transport
	gen      ident.Generator
	keys     *keymap.Keymap
	notify   NotifyFunc
	confirm  ConfirmFunc
	focused  FocusFunc
	known    map[string]struct{}

	threshold int
	log       *zap.Logger
}

// New creates a dispatcher from the given configuration.
func New(cfg Config) (*Dispatcher, error) {
	if cfg.Document == nil {
		return nil, ErrNoDocumentProvider
	}
	if cfg.Dispatch == nil {
		return nil, ErrNoDispatch
	}

	d := &Dispatcher{
		doc:       cfg.Document,
		dispatch:  cfg.Dispatch,
		sel:       cfg.Selection,
		clip:      cfg.Clipboard,
		gen:       cfg.IDs,
		keys:      cfg.Keymap,
		notify:    cfg.Notify,
		confirm:   cfg.Confirm,
		focused:   cfg.EditableFocus,
		threshold: cfg.BulkDeleteThreshold,
		log:       cfg.Logger,
	}
	if d.sel == nil {
		d.sel = selection.NewStore()
	}
	if d.clip == nil {
		d.clip = clipboard.NewTransport(clipboard.Source{})
	}
	if d.gen == nil {
		d.gen = ident.NewUUID()
	}
	if d.keys == nil {
		d.keys = keymap.Default()
	}
	if d.notify == nil {
		d.notify = func(string) {}
	}
	if d.confirm == nil {
		d.confirm = func(string) bool { return true }
	}
	if d.focused == nil {
		d.focused = func() bool { return false }
	}
	if d.threshold <= 0 {
		d.threshold = DefaultBulkDeleteThreshold
	}
	if d.log == nil {
		d.log = zap.NewNop()
	}
	if cfg.KnownKinds != nil {
		d.known = make(map[string]struct{}, len(cfg.KnownKinds))
		for _, kind := range cfg.KnownKinds {
			d.known[kind] = struct{}{}
		}
	}
	return d, nil
}

// Selection exposes the selection store for pointer-driven UI.
func (d *Dispatcher) Selection() *selection.Store {
	return d.sel
}

// HandleChord resolves a chord through the keymap and runs the bound
// action. Chords are suppressed entirely while an editable text field
// has focus.
func (d *Dispatcher) HandleChord(chord key.Chord) Status {
	if d.focused() {
		return StatusSuppressed
	}
	action := d.keys.Resolve(chord)
	if action == keymap.ActionNone {
		return StatusNoOp
	}
	return d.Do(action)
}

// Do runs a named action.
func (d *Dispatcher) Do(action keymap.Action) Status {
	d.log.Debug("action", zap.String("action", string(action)))
	switch action {
	case keymap.ActionCopy:
		return d.Copy()
	case keymap.ActionCut:
		return d.Cut()
	case keymap.ActionPaste:
		return d.Paste()
	case keymap.ActionDuplicate:
		return d.Duplicate()
	case keymap.ActionDelete:
		return d.Delete()
	case keymap.ActionSelectAll:
		return d.SelectAll()
	case keymap.ActionClearSelection:
		return d.ClearSelection()
	default:
		return StatusNoOp
	}
}

// Copy serializes the selection into the clipboard.
func (d *Dispatcher) Copy() Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.doc()
	forest := mutate.Extract(doc, mutate.NewIDSet(d.sel.Selected()...))
	if len(forest) == 0 {
		return StatusNoOp
	}
	d.clip.Store(forest)
	d.notify(countMessage(len(forest), "copied"))
	return StatusOK
}

// Cut copies the selection and removes it from the tree.
func (d *Dispatcher) Cut() Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.doc()
	ids := mutate.NewIDSet(d.sel.Selected()...)
	forest := mutate.Extract(doc, ids)
	if len(forest) == 0 {
		return StatusNoOp
	}
	d.clip.Store(forest)

	next := mutate.Remove(doc, ids)
	d.dispatch(HostAction{Type: ActionSetData, Data: next, RecordHistory: true})
	d.sel.Clear()
	d.notify(countMessage(len(forest), "cut"))
	return StatusOK
}

// Duplicate clones the selection in place and selects the clones.
func (d *Dispatcher) Duplicate() Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.doc()
	next, newIDs := mutate.Duplicate(doc, mutate.NewIDSet(d.sel.Selected()...), d.gen)
	if next == doc {
		return StatusNoOp
	}
	d.dispatch(HostAction{Type: ActionSetData, Data: next, RecordHistory: true})
	d.sel.SelectAll(newIDs)
	d.notify(countMessage(len(newIDs), "duplicated"))
	return StatusOK
}

// Delete removes the selection, asking for confirmation above the
// bulk threshold.
func (d *Dispatcher) Delete() Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.doc()
	ids := mutate.NewIDSet(d.sel.Selected()...)

	count := 0
	for id := range ids {
		if _, ok := locate.Locate(doc, id); ok {
			count++
		}
	}
	if count == 0 {
		return StatusNoOp
	}
	if count >= d.threshold {
		if !d.confirm(fmt.Sprintf("Delete %d components?", count)) {
			return StatusCancelled
		}
	}

	next := mutate.Remove(doc, ids)
	d.dispatch(HostAction{Type: ActionSetData, Data: next, RecordHistory: true})
	d.sel.Clear()
	return StatusOK
}

// SelectAll selects every root component; invoked again while the
// full root set is already selected, it escalates to every component
// in the tree, nested ones included.
func (d *Dispatcher) SelectAll() Status {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.doc()
	rootIDs := locate.CollectIDs(doc, false)
	if len(rootIDs) == 0 {
		return StatusNoOp
	}
	if d.sel.Equals(rootIDs) {
		d.sel.SelectAll(locate.CollectIDs(doc, true))
	} else {
		d.sel.SelectAll(rootIDs)
	}
	return StatusOK
}

// ClearSelection empties the selection.
func (d *Dispatcher) ClearSelection() Status {
	if d.sel.Len() == 0 {
		return StatusNoOp
	}
	d.sel.Clear()
	return StatusOK
}

// ToggleSelect flips one component in or out of the selection.
func (d *Dispatcher) ToggleSelect(id string) {
	d.sel.Toggle(id)
}

// SelectRange extends the selection from the anchor to targetID over
// the current root order.
func (d *Dispatcher) SelectRange(targetID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sel.SelectRange(targetID, locate.CollectIDs(d.doc(), false))
}

// Paste inserts the clipboard payload after the selected component,
// or at the end of root content. The in-memory payload pastes
// synchronously; without one, the OS clipboard is read in the
// background and the paste completes against whatever the document
// looks like when the read resolves.
func (d *Dispatcher) Paste() Status {
	d.mu.Lock()
	if forest, ok := d.clip.Load(); ok {
		defer d.mu.Unlock()
		return d.pasteLocked(forest)
	}
	d.mu.Unlock()

	go func() {
		forest, ok := d.clip.LoadSystem()
		if !ok {
			return
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		d.pasteLocked(forest)
	}()
	return StatusAsync
}

// pasteLocked filters, positions and applies a paste. Callers hold
// d.mu; the document and selection are fetched here, never earlier.
func (d *Dispatcher) pasteLocked(forest []document.Serialized) Status {
	forest, dropped := clipboard.FilterKnown(forest, d.known)
	if dropped > 0 {
		noun := "types"
		if dropped == 1 {
			noun = "type"
		}
		d.notify(fmt.Sprintf("Warning: %d unknown component %s filtered out", dropped, noun))
	}
	if len(forest) == 0 {
		d.notify("Nothing to paste")
		return StatusNoOp
	}

	doc := d.doc()
	target, afterID := pastePosition(doc, d.sel)
	next, newIDs := mutate.Paste(doc, forest, target, afterID, d.gen)
	if next == doc {
		return StatusNoOp
	}
	d.dispatch(HostAction{Type: ActionSetData, Data: next, RecordHistory: true})
	d.sel.SelectAll(newIDs)
	return StatusOK
}

// pastePosition picks the paste destination: directly after a single
// selected component in its own container, otherwise appended to root
// content.
func pastePosition(doc *document.Document, sel *selection.Store) (*document.ZoneKey, string) {
	selected := sel.Selected()
	if len(selected) != 1 {
		return nil, ""
	}
	loc, ok := locate.Locate(doc, selected[0])
	if !ok {
		return nil, ""
	}
	return loc.Zone, selected[0]
}

// countMessage formats "1 component copied" / "3 components cut".
func countMessage(n int, verb string) string {
	if n == 1 {
		return fmt.Sprintf("1 component %s", verb)
	}
	return fmt.Sprintf("%d components %s", n, verb)
}
