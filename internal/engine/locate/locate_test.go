package locate

import (
	"reflect"
	"testing"

	"github.com/draftforge/draftforge/internal/engine/document"
)

// testDoc builds:
//
//	content: [sec, head]
//	sec owns "body":   [txt, inner]
//	sec owns "aside":  [note]
//	inner owns "body": [leaf]
func testDoc() *document.Document {
	return &document.Document{
		Content: []document.Node{
			document.NewNode("Section", "sec"),
			document.NewNode("Heading", "head"),
		},
		Zones: map[document.ZoneKey][]document.Node{
			{OwnerID: "sec", Name: "body"}: {
				document.NewNode("Text", "txt"),
				document.NewNode("Section", "inner"),
			},
			{OwnerID: "sec", Name: "aside"}: {
				document.NewNode("Note", "note"),
			},
			{OwnerID: "inner", Name: "body"}: {
				document.NewNode("Text", "leaf"),
			},
		},
	}
}

func TestLocateRoot(t *testing.T) {
	doc := testDoc()

	loc, ok := Locate(doc, "head")
	if !ok {
		t.Fatal("expected to find head")
	}
	if !loc.IsRoot() || loc.Index != 1 {
		t.Errorf("expected root index 1, got %+v", loc)
	}
}

func TestLocateInZone(t *testing.T) {
	doc := testDoc()

	loc, ok := Locate(doc, "inner")
	if !ok {
		t.Fatal("expected to find inner")
	}
	if loc.IsRoot() {
		t.Fatal("expected zone location")
	}
	want := document.ZoneKey{OwnerID: "sec", Name: "body"}
	if *loc.Zone != want || loc.Index != 1 {
		t.Errorf("expected %s index 1, got %s index %d", want, loc.Zone, loc.Index)
	}
}

func TestLocateNotFound(t *testing.T) {
	doc := testDoc()
	if _, ok := Locate(doc, "ghost"); ok {
		t.Error("expected ghost to be absent")
	}
	if _, ok := Locate(doc, ""); ok {
		t.Error("expected empty id to be absent")
	}
}

func TestZonesOwnedBy(t *testing.T) {
	doc := testDoc()

	keys := ZonesOwnedBy(doc, "sec")
	want := []document.ZoneKey{
		{OwnerID: "sec", Name: "aside"},
		{OwnerID: "sec", Name: "body"},
	}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("expected %v, got %v", want, keys)
	}

	if got := ZonesOwnedBy(doc, "txt"); len(got) != 0 {
		t.Errorf("expected no zones for leaf node, got %v", got)
	}

	// One level only: inner's zone is not listed under sec.
	for _, key := range keys {
		if key.OwnerID != "sec" {
			t.Errorf("unexpected owner in %v", key)
		}
	}
}

func TestCollectIDsShallow(t *testing.T) {
	doc := testDoc()
	got := CollectIDs(doc, false)
	want := []string{"sec", "head"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCollectIDsDeep(t *testing.T) {
	doc := testDoc()
	got := CollectIDs(doc, true)
	// Pre-order; sec's zones visited in name order (aside before body).
	want := []string{"sec", "note", "txt", "inner", "leaf", "head"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCollectIDsEmptyDocument(t *testing.T) {
	doc := document.New()
	if got := CollectIDs(doc, true); len(got) != 0 {
		t.Errorf("expected no ids, got %v", got)
	}
}

func TestIsDescendantOf(t *testing.T) {
	doc := testDoc()

	tests := []struct {
		candidate, ancestor string
		want                bool
	}{
		{"txt", "sec", true},
		{"leaf", "inner", true},
		{"leaf", "sec", true}, // transitive across two levels
		{"sec", "txt", false}, // not symmetric
		{"sec", "sec", false}, // irreflexive
		{"head", "sec", false},
		{"ghost", "sec", false},
		{"txt", "ghost", false},
		{"", "sec", false},
	}
	for _, tt := range tests {
		if got := IsDescendantOf(doc, tt.candidate, tt.ancestor); got != tt.want {
			t.Errorf("IsDescendantOf(%q, %q) = %v, want %v",
				tt.candidate, tt.ancestor, got, tt.want)
		}
	}
}

func TestIsDescendantOfThreeLevels(t *testing.T) {
	doc := testDoc()
	// sec -> inner -> leaf: transitivity holds end to end.
	if !IsDescendantOf(doc, "inner", "sec") {
		t.Error("inner should descend from sec")
	}
	if !IsDescendantOf(doc, "leaf", "inner") {
		t.Error("leaf should descend from inner")
	}
	if !IsDescendantOf(doc, "leaf", "sec") {
		t.Error("leaf should descend from sec transitively")
	}
}
