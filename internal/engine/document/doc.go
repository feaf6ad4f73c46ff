// Package document defines the page-builder document tree: component
// nodes, the zone side-table that holds nested children, and the
// serialized clipboard form.
//
// A document is a flat list of root components (Content) plus a table
// of named zones (Zones). A zone is an ordered child slot owned by
// exactly one component; ownership is expressed by the ZoneKey, not by
// pointers inside the node itself. The zone relation forms a tree
// rooted at Content.
//
// Structure:
//
//	doc := document.Document{
//	    Content: []document.Node{heading, section},
//	    Zones: map[document.ZoneKey][]document.Node{
//	        {OwnerID: "sec-1", Name: "body"}: {table, chart},
//	    },
//	}
//
// Invariants (checked by Validate, preserved by the mutate package):
//
//   - Every node id is unique document-wide.
//   - Every zone's owner id resolves to an existing node.
//   - The zone relation is acyclic and rooted at Content.
//   - No zone list is empty.
//
// Documents are treated as immutable snapshots: mutation lives in the
// mutate package, which returns new documents and never modifies the
// one passed in. Earlier snapshots therefore stay valid for any
// concurrent reader.
package document
