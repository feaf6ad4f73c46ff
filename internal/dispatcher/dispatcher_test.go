package dispatcher

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/draftforge/draftforge/internal/clipboard"
	"github.com/draftforge/draftforge/internal/engine/document"
	"github.com/draftforge/draftforge/internal/engine/locate"
	"github.com/draftforge/draftforge/internal/ident"
	"github.com/draftforge/draftforge/internal/input/key"
	"github.com/draftforge/draftforge/internal/input/keymap"
)

// fakeSystem implements clipboard.System in-process. ReadAll can be
// gated to exercise the asynchronous paste path.
type fakeSystem struct {
	mu   sync.Mutex
	text string
	gate chan struct{}
}

func (f *fakeSystem) ReadAll() (string, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text, nil
}

func (f *fakeSystem) WriteAll(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
	return nil
}

// harness hosts a dispatcher over a mutable document, playing the
// part of the host editor store.
type harness struct {
	mu            sync.Mutex
	doc           *document.Document
	actions       []HostAction
	notifications []string
	dispatched    chan struct{}

	d *Dispatcher
}

func newHarness(t *testing.T, doc *document.Document, tweak func(*Config)) *harness {
	t.Helper()
	h := &harness{doc: doc, dispatched: make(chan struct{}, 16)}

	cfg := Config{
		Document: func() *document.Document {
			h.mu.Lock()
			defer h.mu.Unlock()
			return h.doc
		},
		Dispatch: func(a HostAction) {
			h.mu.Lock()
			h.actions = append(h.actions, a)
			h.doc = a.Data
			h.mu.Unlock()
			h.dispatched <- struct{}{}
		},
		Notify: func(msg string) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.notifications = append(h.notifications, msg)
		},
		IDs: ident.NewSequential("new"),
	}
	if tweak != nil {
		tweak(&cfg)
	}

	d, err := New(cfg)
	if err != nil {
		t.Fatalf("dispatcher construction failed: %v", err)
	}
	h.d = d
	return h
}

func (h *harness) document() *document.Document {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.doc
}

func (h *harness) notified(substr string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, msg := range h.notifications {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func (h *harness) waitDispatch(t *testing.T) {
	t.Helper()
	select {
	case <-h.dispatched:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dispatch")
	}
}

func builderDoc() *document.Document {
	return &document.Document{
		Content: []document.Node{
			document.NewNode("Heading", "head"),
			document.NewNode("Section", "sec"),
			document.NewNode("Text", "tail"),
		},
		Zones: map[document.ZoneKey][]document.Node{
			{OwnerID: "sec", Name: "body"}: {document.NewNode("Text", "inner")},
		},
	}
}

func TestNewRequiresProviderAndDispatch(t *testing.T) {
	if _, err := New(Config{Dispatch: func(HostAction) {}}); err != ErrNoDocumentProvider {
		t.Errorf("expected ErrNoDocumentProvider, got %v", err)
	}
	if _, err := New(Config{Document: document.New}); err != ErrNoDispatch {
		t.Errorf("expected ErrNoDispatch, got %v", err)
	}
}

func TestCopyThenPaste(t *testing.T) {
	h := newHarness(t, builderDoc(), nil)

	h.d.ToggleSelect("head")
	if got := h.d.Copy(); got != StatusOK {
		t.Fatalf("copy: %v", got)
	}
	if !h.notified("1 component copied") {
		t.Errorf("missing copy toast, got %v", h.notifications)
	}

	// Single selection: paste lands right after it.
	if got := h.d.Paste(); got != StatusOK {
		t.Fatalf("paste: %v", got)
	}
	ids := locate.CollectIDs(h.document(), false)
	if len(ids) != 4 || ids[0] != "head" || ids[1] == "head" {
		t.Errorf("expected pasted copy after head, got %v", ids)
	}
	if ids[1] != "new-1" {
		t.Errorf("expected fresh id new-1, got %v", ids)
	}
	// Pasted components become the selection.
	if !h.d.Selection().Has("new-1") {
		t.Error("expected pasted component selected")
	}
}

func TestCutThenPasteMovesSubtree(t *testing.T) {
	h := newHarness(t, builderDoc(), nil)

	h.d.ToggleSelect("sec")
	if got := h.d.Cut(); got != StatusOK {
		t.Fatalf("cut: %v", got)
	}
	if !h.notified("1 component cut") {
		t.Errorf("missing cut toast, got %v", h.notifications)
	}

	cutDoc := h.document()
	if _, ok := locate.Locate(cutDoc, "sec"); ok {
		t.Fatal("cut left the section in place")
	}
	if len(cutDoc.Zones) != 0 {
		t.Fatalf("cut left zones behind: %v", cutDoc.Zones)
	}
	if h.d.Selection().Len() != 0 {
		t.Error("expected selection cleared after cut")
	}

	if got := h.d.Paste(); got != StatusOK {
		t.Fatalf("paste: %v", got)
	}
	pasted := h.document()
	// Appended at root end (nothing selected), subtree intact under a
	// fresh id.
	roots := locate.CollectIDs(pasted, false)
	newRoot := roots[len(roots)-1]
	if newRoot == "sec" {
		t.Error("paste reused the cut id")
	}
	zones := locate.ZonesOwnedBy(pasted, newRoot)
	if len(zones) != 1 || zones[0].Name != "body" {
		t.Errorf("subtree lost its zone: %v", zones)
	}
	if err := document.Validate(pasted); err != nil {
		t.Errorf("pasted document invalid: %v", err)
	}
}

func TestDuplicateViaChord(t *testing.T) {
	h := newHarness(t, builderDoc(), nil)
	h.d.ToggleSelect("head")

	if got := h.d.HandleChord(key.MustParse("Ctrl+D")); got != StatusOK {
		t.Fatalf("duplicate chord: %v", got)
	}
	ids := locate.CollectIDs(h.document(), false)
	if len(ids) != 4 || ids[1] != "new-1" {
		t.Errorf("expected duplicate after head, got %v", ids)
	}
	if !h.d.Selection().Has("new-1") || h.d.Selection().Has("head") {
		t.Error("expected selection moved to the duplicate")
	}
}

func TestDeleteBelowThresholdSkipsConfirm(t *testing.T) {
	confirmed := false
	h := newHarness(t, builderDoc(), func(cfg *Config) {
		cfg.Confirm = func(string) bool { confirmed = true; return true }
	})

	h.d.ToggleSelect("head")
	if got := h.d.Delete(); got != StatusOK {
		t.Fatalf("delete: %v", got)
	}
	if confirmed {
		t.Error("single delete must not prompt")
	}
	if _, ok := locate.Locate(h.document(), "head"); ok {
		t.Error("head still present")
	}
}

func TestBulkDeleteConfirmation(t *testing.T) {
	var prompt string
	h := newHarness(t, builderDoc(), func(cfg *Config) {
		cfg.BulkDeleteThreshold = 3
		cfg.Confirm = func(p string) bool { prompt = p; return false }
	})

	h.d.SelectAll() // head, sec, tail
	if got := h.d.Delete(); got != StatusCancelled {
		t.Fatalf("expected cancellation, got %v", got)
	}
	if prompt != "Delete 3 components?" {
		t.Errorf("unexpected prompt %q", prompt)
	}
	if h.document().Len() != 3 {
		t.Error("declined delete still mutated the document")
	}
	if len(h.actions) != 0 {
		t.Error("declined delete dispatched an action")
	}
}

func TestTwoStageSelectAll(t *testing.T) {
	h := newHarness(t, builderDoc(), nil)

	if got := h.d.SelectAll(); got != StatusOK {
		t.Fatalf("select all: %v", got)
	}
	if h.d.Selection().Len() != 3 || h.d.Selection().Has("inner") {
		t.Errorf("first stage should select roots only, got %v", h.d.Selection().Selected())
	}

	// Second consecutive invocation escalates to the deep set.
	h.d.SelectAll()
	if !h.d.Selection().Has("inner") || h.d.Selection().Len() != 4 {
		t.Errorf("second stage should include nested ids, got %v", h.d.Selection().Selected())
	}

	// A third invocation stays at the deep set only via the root
	// comparison: deep selection no longer equals the root set, so it
	// falls back to stage one.
	h.d.SelectAll()
	if h.d.Selection().Has("inner") {
		t.Errorf("expected reset to root stage, got %v", h.d.Selection().Selected())
	}
}

func TestEscapeClearsSelection(t *testing.T) {
	h := newHarness(t, builderDoc(), nil)
	h.d.ToggleSelect("head")

	if got := h.d.HandleChord(key.MustParse("Escape")); got != StatusOK {
		t.Fatalf("escape: %v", got)
	}
	if h.d.Selection().Len() != 0 {
		t.Error("selection not cleared")
	}
	if got := h.d.HandleChord(key.MustParse("Escape")); got != StatusNoOp {
		t.Errorf("expected no-op on empty selection, got %v", got)
	}
}

func TestEditableFocusSuppressesChords(t *testing.T) {
	editing := true
	h := newHarness(t, builderDoc(), func(cfg *Config) {
		cfg.EditableFocus = func() bool { return editing }
	})
	h.d.ToggleSelect("head")

	if got := h.d.HandleChord(key.MustParse("Delete")); got != StatusSuppressed {
		t.Fatalf("expected suppression, got %v", got)
	}
	if _, ok := locate.Locate(h.document(), "head"); !ok {
		t.Fatal("suppressed chord still deleted")
	}

	editing = false
	if got := h.d.HandleChord(key.MustParse("Delete")); got != StatusOK {
		t.Errorf("expected delete once focus left the field, got %v", got)
	}
}

func TestEmptySelectionOperationsAreNoOps(t *testing.T) {
	h := newHarness(t, builderDoc(), nil)

	if got := h.d.Copy(); got != StatusNoOp {
		t.Errorf("copy: %v", got)
	}
	if got := h.d.Cut(); got != StatusNoOp {
		t.Errorf("cut: %v", got)
	}
	if got := h.d.Duplicate(); got != StatusNoOp {
		t.Errorf("duplicate: %v", got)
	}
	if got := h.d.Delete(); got != StatusNoOp {
		t.Errorf("delete: %v", got)
	}
	if len(h.actions) != 0 {
		t.Errorf("no-ops dispatched actions: %v", h.actions)
	}
}

func TestPasteFiltersUnknownKinds(t *testing.T) {
	h := newHarness(t, builderDoc(), func(cfg *Config) {
		cfg.KnownKinds = []string{"Heading", "Text"}
	})

	h.d.ToggleSelect("head")
	h.d.ToggleSelect("sec") // Section is not a known kind here
	h.d.Copy()
	h.d.Selection().Clear()

	if got := h.d.Paste(); got != StatusOK {
		t.Fatalf("paste: %v", got)
	}
	if !h.notified("Warning: 1 unknown component type filtered out") {
		t.Errorf("missing filter warning, got %v", h.notifications)
	}
	if len(locate.CollectIDs(h.document(), false)) != 4 {
		t.Errorf("expected only the heading pasted, got %v", locate.CollectIDs(h.document(), false))
	}
}

func TestPasteFilterWarningPluralizes(t *testing.T) {
	h := newHarness(t, builderDoc(), func(cfg *Config) {
		cfg.KnownKinds = []string{"Text"}
	})

	h.d.ToggleSelect("head")
	h.d.ToggleSelect("sec")
	h.d.Copy()
	h.d.Selection().Clear()

	if got := h.d.Paste(); got != StatusNoOp {
		t.Fatalf("expected no-op, got %v", got)
	}
	if !h.notified("Warning: 2 unknown component types filtered out") {
		t.Errorf("missing plural warning, got %v", h.notifications)
	}
}

func TestPasteNothingAfterFiltering(t *testing.T) {
	h := newHarness(t, builderDoc(), func(cfg *Config) {
		cfg.KnownKinds = []string{}
	})
	h.d.ToggleSelect("head")
	h.d.Copy()

	if got := h.d.Paste(); got != StatusNoOp {
		t.Fatalf("expected no-op, got %v", got)
	}
	if !h.notified("Nothing to paste") {
		t.Errorf("missing toast, got %v", h.notifications)
	}
	if len(h.actions) != 0 {
		t.Error("empty paste dispatched an action")
	}
}

func TestAsyncSystemPasteUsesCurrentDocument(t *testing.T) {
	sys := &fakeSystem{gate: make(chan struct{})}

	// Another session wrote an envelope to the OS clipboard.
	seed := clipboard.NewTransport(
		clipboard.Source{TemplateID: "other", PageID: "p"},
		clipboard.WithSystem(sys),
	)
	seed.Store([]document.Serialized{
		{Type: "Note", Props: map[string]any{"id": "n"}, OriginalID: "n"},
	})

	h := newHarness(t, builderDoc(), func(cfg *Config) {
		cfg.Clipboard = clipboard.NewTransport(clipboard.Source{TemplateID: "tpl", PageID: "pg"}, clipboard.WithSystem(sys))
	})

	// No in-memory payload: paste goes async and blocks on the gated
	// clipboard read.
	if got := h.d.Paste(); got != StatusAsync {
		t.Fatalf("expected async, got %v", got)
	}

	// An edit lands while the read is in flight.
	h.mu.Lock()
	h.doc = &document.Document{Content: []document.Node{document.NewNode("Heading", "fresh")}}
	h.mu.Unlock()

	close(sys.gate)
	h.waitDispatch(t)

	// The paste applied to the intervening document, not the snapshot
	// captured at key-press time.
	ids := locate.CollectIDs(h.document(), false)
	if len(ids) != 2 || ids[0] != "fresh" {
		t.Errorf("async paste overwrote the intervening edit: %v", ids)
	}
	if h.document().Content[1].Type != "Note" {
		t.Errorf("expected pasted note, got %+v", h.document().Content)
	}
}

func TestSelectRangeThroughDispatcher(t *testing.T) {
	h := newHarness(t, builderDoc(), nil)

	h.d.ToggleSelect("head")
	h.d.SelectRange("tail")

	want := []string{"head", "sec", "tail"}
	got := h.d.Selection().Selected()
	if len(got) != 3 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusOK:         "ok",
		StatusNoOp:       "no-op",
		StatusSuppressed: "suppressed",
		StatusAsync:      "async",
		StatusCancelled:  "cancelled",
		Status(42):       "unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d) = %q, want %q", status, got, want)
		}
	}
}

func TestDoUnknownActionIsNoOp(t *testing.T) {
	h := newHarness(t, builderDoc(), nil)
	if got := h.d.Do(keymap.Action("bogus")); got != StatusNoOp {
		t.Errorf("expected no-op, got %v", got)
	}
}
