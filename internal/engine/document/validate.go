package document

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	// ErrDuplicateID indicates a node id that occurs more than once.
	ErrDuplicateID = errors.New("document: duplicate node id")

	// ErrMissingID indicates a node without an id prop.
	ErrMissingID = errors.New("document: node missing id")

	// ErrOrphanZone indicates a zone whose owner id resolves to no node.
	ErrOrphanZone = errors.New("document: zone owner not found")

	// ErrUnreachableZone indicates a zone not reachable from Content,
	// which means a cycle or a detached subtree.
	ErrUnreachableZone = errors.New("document: zone not reachable from content")

	// ErrEmptyZone indicates a zone with an empty child list.
	ErrEmptyZone = errors.New("document: empty zone list")
)

// Validate checks the four document invariants: id uniqueness,
// resolvable zone owners, a zone relation that is acyclic and rooted
// at Content, and no empty zone lists. It returns the first violation
// found.
func Validate(d *Document) error {
	seen := make(map[string]struct{})

	check := func(nodes []Node) error {
		for _, n := range nodes {
			id := n.ID()
			if id == "" {
				return fmt.Errorf("%w: type %q", ErrMissingID, n.Type)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: %q", ErrDuplicateID, id)
			}
			seen[id] = struct{}{}
		}
		return nil
	}

	if err := check(d.Content); err != nil {
		return err
	}
	for key, nodes := range d.Zones {
		if len(nodes) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyZone, key)
		}
		if err := check(nodes); err != nil {
			return err
		}
	}

	for key := range d.Zones {
		if _, ok := seen[key.OwnerID]; !ok {
			return fmt.Errorf("%w: %s", ErrOrphanZone, key)
		}
	}

	// Walk the ownership tree from Content; every zone must be visited.
	reached := make(map[ZoneKey]struct{}, len(d.Zones))
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			id := n.ID()
			for key, children := range d.Zones {
				if key.OwnerID != id {
					continue
				}
				if _, done := reached[key]; done {
					continue
				}
				reached[key] = struct{}{}
				walk(children)
			}
		}
	}
	walk(d.Content)

	for key := range d.Zones {
		if _, ok := reached[key]; !ok {
			return fmt.Errorf("%w: %s", ErrUnreachableZone, key)
		}
	}
	return nil
}
