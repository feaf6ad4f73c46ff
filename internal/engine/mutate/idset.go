package mutate

import (
	"github.com/draftforge/draftforge/internal/engine/document"
	"github.com/draftforge/draftforge/internal/engine/locate"
)

// IDSet is an unordered set of node ids used to address a selection.
type IDSet map[string]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has returns true if id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// selectedInOrder returns the members of ids that exist in doc, in
// document order. Operations iterate this instead of the set so their
// output order never depends on map iteration.
func selectedInOrder(doc *document.Document, ids IDSet) []string {
	if len(ids) == 0 {
		return nil
	}
	var order []string
	for _, id := range locate.CollectIDs(doc, true) {
		if ids.Has(id) {
			order = append(order, id)
		}
	}
	return order
}

// nodeByID returns the node with the given id.
func nodeByID(doc *document.Document, id string) (document.Node, bool) {
	loc, ok := locate.Locate(doc, id)
	if !ok {
		return document.Node{}, false
	}
	if loc.IsRoot() {
		return doc.Content[loc.Index], true
	}
	return doc.Zones[*loc.Zone][loc.Index], true
}

// takenIDs returns the set of every id in the document, used to guard
// fresh-id generation for a whole batch.
func takenIDs(doc *document.Document) map[string]struct{} {
	ids := locate.CollectIDs(doc, true)
	taken := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		taken[id] = struct{}{}
	}
	return taken
}

// insertAt returns a new list with items inserted at index idx.
func insertAt(list []document.Node, idx int, items ...document.Node) []document.Node {
	out := make([]document.Node, 0, len(list)+len(items))
	out = append(out, list[:idx]...)
	out = append(out, items...)
	out = append(out, list[idx:]...)
	return out
}
