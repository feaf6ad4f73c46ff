package document

import (
	"encoding/json"
	"fmt"
)

// Document is one page of a report template: an ordered list of root
// components plus the zone table holding all nested children.
type Document struct {
	// Content is the ordered sequence of root-level components.
	Content []Node `json:"content"`

	// Zones maps each zone to its ordered children. Nil and empty are
	// equivalent for a document without nesting.
	Zones map[ZoneKey][]Node `json:"zones,omitempty"`
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Zone returns the child list for key, or nil if the zone is absent.
func (d *Document) Zone(key ZoneKey) []Node {
	if d.Zones == nil {
		return nil
	}
	return d.Zones[key]
}

// Len returns the number of root-level components.
func (d *Document) Len() int {
	return len(d.Content)
}

// Clone returns a deep copy sharing no mutable state with d.
func (d *Document) Clone() *Document {
	out := &Document{Content: cloneNodes(d.Content)}
	if d.Zones != nil {
		out.Zones = make(map[ZoneKey][]Node, len(d.Zones))
		for key, nodes := range d.Zones {
			out.Zones[key] = cloneNodes(nodes)
		}
	}
	return out
}

// ShallowCopy returns a new document with a copied content slice and
// zone map, but shared node values. Mutation functions use it as the
// copy-on-write starting point: lists that change are replaced
// wholesale, untouched nodes stay shared.
func (d *Document) ShallowCopy() *Document {
	out := &Document{}
	if d.Content != nil {
		out.Content = make([]Node, len(d.Content))
		copy(out.Content, d.Content)
	}
	if d.Zones != nil {
		out.Zones = make(map[ZoneKey][]Node, len(d.Zones))
		for key, nodes := range d.Zones {
			out.Zones[key] = nodes
		}
	}
	return out
}

// Marshal encodes the document as JSON with zone keys in the canonical
// "ownerId:zoneName" text form.
func Marshal(d *Document) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("document: encoding: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a document previously produced by Marshal and
// validates its invariants.
func Unmarshal(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("document: decoding: %w", err)
	}
	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
