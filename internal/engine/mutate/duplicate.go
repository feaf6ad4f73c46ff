package mutate

import (
	"github.com/draftforge/draftforge/internal/engine/document"
	"github.com/draftforge/draftforge/internal/engine/locate"
	"github.com/draftforge/draftforge/internal/ident"
)

// Duplicate clones every selected node and its transitive zone
// contents, giving each cloned node a fresh id and re-owning every
// cloned zone under the clone's id. Each clone is inserted immediately
// after its original in the same container; originals selected later
// in document order account for the index shifts of earlier
// insertions.
//
// The returned ids are the root ids of the clones in processing
// (document) order. An empty or absent selection returns doc unchanged
// with no ids.
func Duplicate(doc *document.Document, ids IDSet, gen ident.Generator) (*document.Document, []string) {
	order := selectedInOrder(doc, ids)
	if len(order) == 0 {
		return doc, nil
	}

	out := doc.ShallowCopy()
	taken := takenIDs(doc)
	newIDs := make([]string, 0, len(order))

	for _, id := range order {
		// Locate against the evolving tree: earlier insertions in the
		// same container have shifted indices by now.
		loc, ok := locate.Locate(out, id)
		if !ok {
			continue
		}
		src, _ := nodeByID(out, id)

		clone, grafts := cloneSubtree(out, src, gen, taken)
		newIDs = append(newIDs, clone.ID())

		if loc.IsRoot() {
			out.Content = insertAt(out.Content, loc.Index+1, clone)
		} else {
			out.Zones[*loc.Zone] = insertAt(out.Zones[*loc.Zone], loc.Index+1, clone)
		}
		if len(grafts) > 0 && out.Zones == nil {
			out.Zones = make(map[document.ZoneKey][]document.Node, len(grafts))
		}
		for key, nodes := range grafts {
			out.Zones[key] = nodes
		}
	}
	return out, newIDs
}

// cloneSubtree deep-clones a node and every zone it transitively owns.
// Every cloned node gets a fresh id; every cloned zone key keeps its
// name but is re-owned under the cloning node's new id. The returned
// map holds the zone entries to graft into the destination document.
func cloneSubtree(doc *document.Document, src document.Node, gen ident.Generator, taken map[string]struct{}) (document.Node, map[document.ZoneKey][]document.Node) {
	newID := ident.Fresh(gen, taken)
	clone := src.Clone().WithID(newID)

	var grafts map[document.ZoneKey][]document.Node
	for _, key := range locate.ZonesOwnedBy(doc, src.ID()) {
		children := doc.Zones[key]
		cloned := make([]document.Node, 0, len(children))
		for _, child := range children {
			childClone, childGrafts := cloneSubtree(doc, child, gen, taken)
			cloned = append(cloned, childClone)
			for k, v := range childGrafts {
				if grafts == nil {
					grafts = make(map[document.ZoneKey][]document.Node)
				}
				grafts[k] = v
			}
		}
		if grafts == nil {
			grafts = make(map[document.ZoneKey][]document.Node)
		}
		grafts[key.WithOwner(newID)] = cloned
	}
	return clone, grafts
}
