package taxipark

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of distinct values
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the given values
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add puts v into the set
func (s Set[T]) Add(v T) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set
func (s Set[T]) Len() int {
	return len(s)
}

// Equal reports whether both sets hold the same values
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}
	return true
}

// Values returns the set members in no particular order
func (s Set[T]) Values() []T {
	values := make([]T, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	return values
}

// Sorted returns the members of s in ascending order
func Sorted[T cmp.Ordered](s Set[T]) []T {
	values := s.Values()
	slices.Sort(values)
	return values
}
