// Package ident generates component ids. The generator is an injected
// capability rather than a package-level counter so mutation code is
// deterministic under test: production wiring uses UUIDs, tests use a
// Sequential generator with a fixed prefix.
package ident

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces component ids. Every call must return a value
// distinct from all previous calls in the process, including many
// calls within a single synchronous batch.
type Generator interface {
	Generate() string
}

// UUID generates random UUID ids. The zero value is ready to use.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() UUID {
	return UUID{}
}

// Generate returns a fresh UUID string.
func (UUID) Generate() string {
	return uuid.NewString()
}

// Sequential generates "prefix-1", "prefix-2", ... ids. It is safe for
// concurrent use and intended for tests and tooling where stable ids
// matter.
type Sequential struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequential returns a sequential generator with the given prefix.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// Generate returns the next id in the sequence.
func (s *Sequential) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s-%d", s.prefix, s.next)
}

// Fresh returns an id from gen that is not present in taken. Weak
// generators (such as Sequential resumed against an existing tree) may
// collide; Fresh retries until the id is unused. The returned id is
// added to taken so one set can guard a whole batch.
func Fresh(gen Generator, taken map[string]struct{}) string {
	for {
		id := gen.Generate()
		if _, exists := taken[id]; !exists {
			taken[id] = struct{}{}
			return id
		}
	}
}
