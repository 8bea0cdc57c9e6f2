package models

// OrderedSet is a set of strings that remembers first-insertion order.
// The zero value is ready to use.
type OrderedSet struct {
	index map[string]int
	items []string
}

// NewOrderedSet returns a set holding items in order, duplicates dropped.
func NewOrderedSet(items ...string) *OrderedSet {
	s := &OrderedSet{}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item if absent and reports whether it was added.
func (s *OrderedSet) Add(item string) bool {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = len(s.items)
	s.items = append(s.items, item)
	return true
}

// Contains reports whether item is in the set.
func (s *OrderedSet) Contains(item string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[item]
	return ok
}

// Len returns the number of items.
func (s *OrderedSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a copy of the items in insertion order.
func (s *OrderedSet) Items() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
