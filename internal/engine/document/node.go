package document

// PropID is the props key that holds a node's identity.
const PropID = "id"

// Node is a single component instance in a document tree.
// Its identity is the string stored under Props["id"]; the node carries
// no child pointers, children live in the document's zone table.
type Node struct {
	// Type names the component kind ("Heading", "Table", ...).
	Type string `json:"type"`

	// Props holds the component's configuration, including its id.
	Props map[string]any `json:"props"`
}

// NewNode creates a node of the given type with an id prop.
func NewNode(typ, id string) Node {
	return Node{
		Type:  typ,
		Props: map[string]any{PropID: id},
	}
}

// ID returns the node's identity, or "" if the id prop is missing or
// not a string.
func (n Node) ID() string {
	id, _ := n.Props[PropID].(string)
	return id
}

// WithID returns a copy of the node whose id prop is set to id.
// The props map is copied; nested values are shared.
func (n Node) WithID(id string) Node {
	props := make(map[string]any, len(n.Props)+1)
	for k, v := range n.Props {
		props[k] = v
	}
	props[PropID] = id
	return Node{Type: n.Type, Props: props}
}

// Clone returns a deep copy of the node. Props values are copied
// recursively so the clone shares no mutable state with the original.
func (n Node) Clone() Node {
	return Node{Type: n.Type, Props: cloneProps(n.Props)}
}

// cloneProps deep-copies a props map.
func cloneProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep-copies JSON-shaped values (maps, slices, scalars).
// Scalar and unrecognized values are returned as-is.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	default:
		return v
	}
}

// cloneNodes deep-copies a node list.
func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
