package mutate

import (
	"github.com/draftforge/draftforge/internal/engine/document"
	"github.com/draftforge/draftforge/internal/engine/locate"
)

// Remove drops every node whose id is in ids, cascading through every
// zone those nodes transitively own and pruning zone lists left empty.
// When a selected node sits inside a zone that is itself being dropped
// (its ancestor is also selected), the zone is discarded wholesale and
// the node is not processed a second time.
//
// Returns doc unchanged (same pointer) for an empty selection or one
// that matches nothing.
func Remove(doc *document.Document, ids IDSet) *document.Document {
	if len(ids) == 0 {
		return doc
	}

	found := false
	for id := range ids {
		if _, ok := locate.Locate(doc, id); ok {
			found = true
			break
		}
	}
	if !found {
		return doc
	}

	// Condemn the transitive zone closure of every selected id. These
	// zones disappear wholesale; their members are never filtered
	// individually.
	doomed := make(map[document.ZoneKey]struct{})
	var condemn func(ownerID string)
	condemn = func(ownerID string) {
		for _, key := range locate.ZonesOwnedBy(doc, ownerID) {
			if _, done := doomed[key]; done {
				continue
			}
			doomed[key] = struct{}{}
			for _, child := range doc.Zones[key] {
				condemn(child.ID())
			}
		}
	}
	for id := range ids {
		condemn(id)
	}

	out := &document.Document{Content: filterNodes(doc.Content, ids)}
	if doc.Zones != nil {
		out.Zones = make(map[document.ZoneKey][]document.Node, len(doc.Zones))
		for key, nodes := range doc.Zones {
			if _, dead := doomed[key]; dead {
				continue
			}
			kept := filterNodes(nodes, ids)
			if len(kept) == 0 {
				continue // prune emptied zones
			}
			out.Zones[key] = kept
		}
		if len(out.Zones) == 0 {
			out.Zones = nil
		}
	}
	return out
}

// filterNodes returns nodes without the selected ids. The input slice
// is returned as-is when nothing matches.
func filterNodes(nodes []document.Node, ids IDSet) []document.Node {
	hit := false
	for _, n := range nodes {
		if ids.Has(n.ID()) {
			hit = true
			break
		}
	}
	if !hit {
		return nodes
	}

	kept := make([]document.Node, 0, len(nodes)-1)
	for _, n := range nodes {
		if !ids.Has(n.ID()) {
			kept = append(kept, n)
		}
	}
	return kept
}
