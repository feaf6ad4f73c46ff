package mutate

import (
	"sort"

	"github.com/draftforge/draftforge/internal/engine/document"
	"github.com/draftforge/draftforge/internal/engine/locate"
	"github.com/draftforge/draftforge/internal/ident"
)

// Paste materializes a serialized forest into the document. Every node
// in the forest, root and nested alike, receives a fresh id, and each
// node's slots become zones owned by that fresh id, preserving the
// parent/child structure of the payload.
//
// Roots are inserted into root content, or into target when given.
// When afterID names a node in the destination list, insertion happens
// immediately after it; otherwise the roots are appended. An empty
// forest, or a target whose owner does not exist, returns doc
// unchanged with no ids.
func Paste(doc *document.Document, forest []document.Serialized, target *document.ZoneKey, afterID string, gen ident.Generator) (*document.Document, []string) {
	if len(forest) == 0 {
		return doc, nil
	}
	if target != nil {
		if _, ok := locate.Locate(doc, target.OwnerID); !ok {
			return doc, nil
		}
	}

	out := doc.ShallowCopy()
	taken := takenIDs(doc)

	roots := make([]document.Node, 0, len(forest))
	newIDs := make([]string, 0, len(forest))
	for _, s := range forest {
		node, grafts := materialize(s, gen, taken)
		roots = append(roots, node)
		newIDs = append(newIDs, node.ID())
		if len(grafts) > 0 && out.Zones == nil {
			out.Zones = make(map[document.ZoneKey][]document.Node, len(grafts))
		}
		for key, nodes := range grafts {
			out.Zones[key] = nodes
		}
	}

	var list []document.Node
	if target == nil {
		list = out.Content
	} else {
		list = out.Zones[*target]
	}

	idx := len(list)
	if afterID != "" {
		for i, n := range list {
			if n.ID() == afterID {
				idx = i + 1
				break
			}
		}
	}
	list = insertAt(list, idx, roots...)

	if target == nil {
		out.Content = list
	} else {
		if out.Zones == nil {
			out.Zones = make(map[document.ZoneKey][]document.Node, 1)
		}
		out.Zones[*target] = list
	}
	return out, newIDs
}

// materialize turns one serialized component into a node plus the zone
// entries for its slot contents, all under fresh ids.
func materialize(s document.Serialized, gen ident.Generator, taken map[string]struct{}) (document.Node, map[document.ZoneKey][]document.Node) {
	id := ident.Fresh(gen, taken)
	node := document.Node{Type: s.Type, Props: s.Props}.Clone().WithID(id)

	var grafts map[document.ZoneKey][]document.Node
	for _, name := range slotNames(s) {
		children := s.Slots[name]
		if len(children) == 0 {
			continue // empty slots are never materialized
		}
		nodes := make([]document.Node, 0, len(children))
		for _, child := range children {
			childNode, childGrafts := materialize(child, gen, taken)
			nodes = append(nodes, childNode)
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
		grafts[document.ZoneKey{OwnerID: id, Name: name}] = nodes
	}
	return node, grafts
}

// slotNames returns a component's slot names in stable order.
func slotNames(s document.Serialized) []string {
	if len(s.Slots) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Slots))
	for name := range s.Slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
