// Package selection tracks which components are selected in the
// editor and the anchor used for range selection. Selection is UI
// state layered over the document; it never appears inside the tree
// itself.
package selection

import (
	"sort"
	"sync"
)

// State classifies the selection by size.
type State uint8

const (
	// StateEmpty means nothing is selected.
	StateEmpty State = iota
	// StateSingle means exactly one component is selected.
	StateSingle
	// StateMulti means two or more components are selected.
	StateMulti
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateSingle:
		return "single"
	case StateMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Store holds the selected ids and the range anchor. All methods are
// safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	selected map[string]struct{}

	// anchor is the last explicitly toggled id; one endpoint of a
	// range selection. Empty when no anchor exists.
	anchor string
}

// NewStore returns an empty selection store.
func NewStore() *Store {
	return &Store{selected: make(map[string]struct{})}
}

// Toggle flips id in or out of the selection and makes it the anchor.
func (s *Store) Toggle(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
	s.anchor = id
}

// SelectRange extends the selection from the anchor to targetID using
// the given root-level document order. Without an anchor (or when
// anchor or target are not part of the order) the selection collapses
// to the target alone and the target becomes the anchor. Otherwise the
// inclusive index range is unioned into the existing selection
// (unrelated selected ids are kept) and the anchor stays put.
func (s *Store) SelectRange(targetID string, rootOrdered []string) {
	if targetID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	anchorIdx, targetIdx := -1, -1
	for i, id := range rootOrdered {
		if id == s.anchor {
			anchorIdx = i
		}
		if id == targetID {
			targetIdx = i
		}
	}

	if s.anchor == "" || anchorIdx < 0 || targetIdx < 0 {
		s.selected = map[string]struct{}{targetID: {}}
		s.anchor = targetID
		return
	}

	lo, hi := anchorIdx, targetIdx
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, id := range rootOrdered[lo : hi+1] {
		s.selected[id] = struct{}{}
	}
}

// SelectAll replaces the selection with the full given set. The anchor
// survives when it is part of the new selection, so a shift-range
// after select-all still extends from the last explicit pick;
// otherwise it is cleared.
func (s *Store) SelectAll(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			s.selected[id] = struct{}{}
		}
	}
	if _, ok := s.selected[s.anchor]; !ok {
		s.anchor = ""
	}
}

// Clear empties the selection and the anchor.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]struct{})
	s.anchor = ""
}

// Has returns true if id is selected.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[id]
	return ok
}

// Selected returns the selected ids, sorted for determinism. Callers
// needing document order intersect with the locator's id walk.
func (s *Store) Selected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of selected ids.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// Anchor returns the current range anchor, or "".
func (s *Store) Anchor() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.anchor
}

// IsMulti returns true when two or more components are selected.
func (s *Store) IsMulti() bool {
	return s.Len() >= 2
}

// State classifies the current selection size.
func (s *Store) State() State {
	switch n := s.Len(); {
	case n == 0:
		return StateEmpty
	case n == 1:
		return StateSingle
	default:
		return StateMulti
	}
}

// Equals reports whether the selection is exactly the given id set.
// The dispatcher uses it to detect the second stage of select-all.
func (s *Store) Equals(ids []string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(ids) != len(s.selected) {
		return false
	}
	for _, id := range ids {
		if _, ok := s.selected[id]; !ok {
			return false
		}
	}
	return true
}
