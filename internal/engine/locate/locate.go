// Package locate provides pure read-only queries over a document tree:
// finding a node's container, listing owned zones, collecting ids in
// document order, and testing the ancestor/descendant relation.
//
// Document order is defined as a pre-order walk: a node first, then
// each of its zones in zone-name order, each zone's children in list
// order. Zone-name ordering makes the walk deterministic where the
// zone table itself is an unordered map.
package locate

import (
	"sort"

	"github.com/draftforge/draftforge/internal/engine/document"
)

// Location describes where a node lives inside a document.
type Location struct {
	// Zone is the containing zone, or nil for root content.
	Zone *document.ZoneKey

	// Index is the node's position within its container.
	Index int
}

// IsRoot returns true if the location is in root content.
func (l Location) IsRoot() bool {
	return l.Zone == nil
}

// Locate finds the container and index of the node with the given id.
// The second return value is false if the id is absent.
func Locate(doc *document.Document, id string) (Location, bool) {
	if id == "" {
		return Location{}, false
	}
	for i, n := range doc.Content {
		if n.ID() == id {
			return Location{Index: i}, true
		}
	}
	for key, nodes := range doc.Zones {
		for i, n := range nodes {
			if n.ID() == id {
				k := key
				return Location{Zone: &k, Index: i}, true
			}
		}
	}
	return Location{}, false
}

// ZonesOwnedBy returns every zone whose owner is id, one level deep,
// sorted by zone name. Callers recurse explicitly for the transitive
// closure.
func ZonesOwnedBy(doc *document.Document, id string) []document.ZoneKey {
	var keys []document.ZoneKey
	for key := range doc.Zones {
		if key.OwnerID == id {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Name < keys[j].Name })
	return keys
}

// CollectIDs returns node ids in document order. With deep false only
// root-level ids are returned; with deep true the full pre-order walk
// is performed, descending into each owned zone.
func CollectIDs(doc *document.Document, deep bool) []string {
	if !deep {
		ids := make([]string, 0, len(doc.Content))
		for _, n := range doc.Content {
			ids = append(ids, n.ID())
		}
		return ids
	}

	var ids []string
	var walk func(nodes []document.Node)
	walk = func(nodes []document.Node) {
		for _, n := range nodes {
			ids = append(ids, n.ID())
			for _, key := range ZonesOwnedBy(doc, n.ID()) {
				walk(doc.Zones[key])
			}
		}
	}
	walk(doc.Content)
	return ids
}

// IsDescendantOf reports whether candidateID appears anywhere in the
// transitive zone closure of ancestorID. The relation is irreflexive;
// it is false when either id is absent from the document.
func IsDescendantOf(doc *document.Document, candidateID, ancestorID string) bool {
	if candidateID == "" || ancestorID == "" || candidateID == ancestorID {
		return false
	}
	if _, ok := Locate(doc, ancestorID); !ok {
		return false
	}

	var search func(ownerID string) bool
	search = func(ownerID string) bool {
		for _, key := range ZonesOwnedBy(doc, ownerID) {
			for _, n := range doc.Zones[key] {
				if n.ID() == candidateID {
					return true
				}
				if search(n.ID()) {
					return true
				}
			}
		}
		return false
	}
	return search(ancestorID)
}
