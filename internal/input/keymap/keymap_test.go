package keymap

import (
	"testing"

	"github.com/draftforge/draftforge/internal/input/key"
)

func TestDefaultBindings(t *testing.T) {
	km := Default()

	tests := []struct {
		spec string
		want Action
	}{
		{"Ctrl+C", ActionCopy},
		{"Cmd+C", ActionCopy},
		{"Ctrl+X", ActionCut},
		{"Cmd+V", ActionPaste},
		{"Ctrl+A", ActionSelectAll},
		{"Cmd+D", ActionDuplicate},
		{"Delete", ActionDelete},
		{"Backspace", ActionDelete},
		{"Escape", ActionClearSelection},
	}
	for _, tt := range tests {
		if got := km.Resolve(key.MustParse(tt.spec)); got != tt.want {
			t.Errorf("Resolve(%s) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestResolveUnbound(t *testing.T) {
	km := Default()
	if got := km.Resolve(key.MustParse("Ctrl+Z")); got != ActionNone {
		t.Errorf("expected ActionNone for unbound chord, got %q", got)
	}
}

func TestBindSpec(t *testing.T) {
	km := New()
	if err := km.BindSpec("Ctrl+Shift+D", ActionDuplicate); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	if got := km.Resolve(key.MustParse("ctrl+shift+d")); got != ActionDuplicate {
		t.Errorf("expected duplicate, got %q", got)
	}

	if err := km.BindSpec("Warp+K", ActionCopy); err == nil {
		t.Error("expected error for invalid spec")
	}
}

func TestRebindReplacesAllChords(t *testing.T) {
	km := Default()
	if err := km.Rebind(ActionDelete, "Ctrl+Backspace"); err != nil {
		t.Fatalf("rebind failed: %v", err)
	}

	if got := km.Resolve(key.MustParse("Delete")); got != ActionNone {
		t.Errorf("old chord still bound: %q", got)
	}
	if got := km.Resolve(key.MustParse("Backspace")); got != ActionNone {
		t.Errorf("old chord still bound: %q", got)
	}
	if got := km.Resolve(key.MustParse("Ctrl+Backspace")); got != ActionDelete {
		t.Errorf("new chord not bound, got %q", got)
	}
}

func TestBindReplacesChord(t *testing.T) {
	km := New()
	km.Bind(Binding{Chord: key.MustParse("Ctrl+K"), Action: ActionCopy})
	km.Bind(Binding{Chord: key.MustParse("Ctrl+K"), Action: ActionCut})

	if got := km.Resolve(key.MustParse("Ctrl+K")); got != ActionCut {
		t.Errorf("expected later binding to win, got %q", got)
	}
	if km.Len() != 1 {
		t.Errorf("expected one binding, got %d", km.Len())
	}
}
