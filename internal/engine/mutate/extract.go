package mutate

import (
	"github.com/draftforge/draftforge/internal/engine/document"
	"github.com/draftforge/draftforge/internal/engine/locate"
)

// Extract serializes every selected node into its self-contained
// clipboard form, nesting each owned zone's children under the zone's
// local name. Output follows document order regardless of the set's
// iteration order. The source document is not touched; props are
// deep-copied so later edits to the tree cannot leak into a stored
// clipboard payload.
func Extract(doc *document.Document, ids IDSet) []document.Serialized {
	order := selectedInOrder(doc, ids)
	if len(order) == 0 {
		return nil
	}

	out := make([]document.Serialized, 0, len(order))
	for _, id := range order {
		n, ok := nodeByID(doc, id)
		if !ok {
			continue
		}
		out = append(out, serialize(doc, n))
	}
	return out
}

// serialize builds the recursive clipboard form of one node.
func serialize(doc *document.Document, n document.Node) document.Serialized {
	clone := n.Clone()
	s := document.Serialized{
		Type:       clone.Type,
		Props:      clone.Props,
		OriginalID: n.ID(),
	}
	for _, key := range locate.ZonesOwnedBy(doc, n.ID()) {
		children := doc.Zones[key]
		slot := make([]document.Serialized, 0, len(children))
		for _, child := range children {
			slot = append(slot, serialize(doc, child))
		}
		if s.Slots == nil {
			s.Slots = make(map[string][]document.Serialized)
		}
		s.Slots[key.Name] = slot
	}
	return s
}
