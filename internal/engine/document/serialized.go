package document

// Serialized is the self-contained clipboard form of a component: the
// node itself plus everything it owns, nested recursively by zone name
// instead of the flat zone-table encoding. It is independent of any
// particular document, which is what makes cross-template paste
// possible.
type Serialized struct {
	// Type names the component kind, copied verbatim.
	Type string `json:"type"`

	// Props is the component configuration, copied verbatim. It still
	// contains the source id prop; paste always overwrites it.
	Props map[string]any `json:"props"`

	// Slots maps each owned zone's local name to its serialized
	// children, in zone order.
	Slots map[string][]Serialized `json:"slots,omitempty"`

	// OriginalID records the source node's id for diagnostics. It is
	// never reused when the component is pasted.
	OriginalID string `json:"originalId"`
}

// Count returns the total number of components in the subtree,
// including s itself.
func (s Serialized) Count() int {
	n := 1
	for _, children := range s.Slots {
		for _, child := range children {
			n += child.Count()
		}
	}
	return n
}

// CountAll returns the total number of components in a forest.
func CountAll(forest []Serialized) int {
	n := 0
	for _, s := range forest {
		n += s.Count()
	}
	return n
}
