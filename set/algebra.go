package set

import "reflect"

// containsAny reports whether v equals some element of elems. The batch
// slices handed to the algebra operations are not hash-indexed, so this
// is a linear scan: O(n) per probe, O(n*m) per algebra call. That cost is
// part of the design, not an oversight.
func containsAny[T any](elems []T, v T) bool {
	for _, e := range elems {
		if reflect.DeepEqual(e, v) {
			return true
		}
	}
	return false
}

// UnionUpdate adds every supplied value to the set. Each insert runs its
// own growth check, so a large batch may trigger several rebuilds.
func (s *DynamicSet[T]) UnionUpdate(elems ...T) {
	for _, e := range elems {
		s.Add(e)
	}
}

// Union returns the supplied values as given, followed by every current
// element not present among them, without mutating the set. Duplicates
// within the supplied batch are kept; they are only deduplicated against
// the current membership.
func (s *DynamicSet[T]) Union(elems ...T) []T {
	current := s.Values()

	shared := 0
	for _, v := range current {
		if containsAny(elems, v) {
			shared++
		}
	}

	out := make([]T, 0, len(current)+len(elems)-shared)
	out = append(out, elems...)
	for _, v := range current {
		if !containsAny(elems, v) {
			out = append(out, v)
		}
	}
	return out
}

// Intersection returns, in enumeration order, every current element that
// equals some supplied value, without mutating the set.
func (s *DynamicSet[T]) Intersection(elems ...T) []T {
	var out []T
	for _, v := range s.Values() {
		if containsAny(elems, v) {
			out = append(out, v)
		}
	}
	return out
}

// IntersectionUpdate keeps only the elements present in both the set and
// the supplied values, rebuilding the table from scratch.
func (s *DynamicSet[T]) IntersectionUpdate(elems ...T) {
	s.rebuild(s.Intersection(elems...))
}

// Difference returns, in enumeration order, every current element that
// equals no supplied value, without mutating the set.
func (s *DynamicSet[T]) Difference(elems ...T) []T {
	var out []T
	for _, v := range s.Values() {
		if !containsAny(elems, v) {
			out = append(out, v)
		}
	}
	return out
}

// DifferenceUpdate removes every element that equals some supplied value,
// rebuilding the table from scratch.
func (s *DynamicSet[T]) DifferenceUpdate(elems ...T) {
	s.rebuild(s.Difference(elems...))
}

// rebuild discards the bucket array and re-inserts the surviving values
// into a fresh one sized exactly to their count. The old and new storage
// are never mutated interleaved: survivors are collected first, then the
// swap happens, then the re-inserts run against the new array only. An
// empty survivor list leaves a zero-capacity table; the next Add grows
// it back to the default capacity.
func (s *DynamicSet[T]) rebuild(survivors []T) {
	s.size = len(survivors)
	s.table = make([]*node[T], s.size)
	s.count = 0
	for _, v := range survivors {
		s.Add(v)
	}
}
