// Package selection implements the multi-select state shared by the list
// views: a set of selected identifiers over whatever collection is currently
// displayed. The set holds ids only, never the entities themselves, and it is
// the caller's job to prune it after a delete so no stale id survives.
package selection

// Set tracks selected identifiers.
type Set[K comparable] struct {
	members map[K]struct{}
}

func New[K comparable]() *Set[K] {
	return &Set[K]{members: make(map[K]struct{})}
}

// Toggle flips membership of id.
func (s *Set[K]) Toggle(id K) {
	if _, ok := s.members[id]; ok {
		delete(s.members, id)
	} else {
		s.members[id] = struct{}{}
	}
}

// Has reports whether id is selected.
func (s *Set[K]) Has(id K) bool {
	_, ok := s.members[id]
	return ok
}

// SelectAll replaces the selection with all given ids.
func (s *Set[K]) SelectAll(ids []K) {
	s.members = make(map[K]struct{}, len(ids))
	for _, id := range ids {
		s.members[id] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Set[K]) Clear() {
	s.members = make(map[K]struct{})
}

// IsAllSelected reports whether the selection covers exactly the given ids
// and is non-empty.
func (s *Set[K]) IsAllSelected(ids []K) bool {
	if len(ids) == 0 || len(s.members) != len(ids) {
		return false
	}
	for _, id := range ids {
		if _, ok := s.members[id]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of selected ids.
func (s *Set[K]) Len() int {
	return len(s.members)
}

// Values returns the selected ids in unspecified order.
func (s *Set[K]) Values() []K {
	out := make([]K, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	return out
}

// RemoveAll drops the given ids from the selection. Called after a delete so
// the selection never references entities that are gone.
func (s *Set[K]) RemoveAll(ids []K) {
	for _, id := range ids {
		delete(s.members, id)
	}
}
