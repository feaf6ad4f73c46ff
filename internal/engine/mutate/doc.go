// Package mutate implements the structural operations on a document
// tree: remove, duplicate, extract and paste.
//
// Every function is pure: it takes a document and returns a new one,
// never touching the input. An empty or entirely-absent selection
// returns the input pointer unchanged, so callers detect no-ops by
// identity:
//
//	next := mutate.Remove(doc, ids)
//	if next == doc {
//	    return // nothing happened, skip the dispatch
//	}
//
// Copy-on-write keeps no-op cheap and snapshots safe: only containers
// that change are reallocated, untouched node values stay shared
// between the old and new document. Id generation is an injected
// capability (ident.Generator); duplicate and paste never reuse an id
// already present in the tree or produced earlier in the same batch.
package mutate
