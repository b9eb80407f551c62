package set

import (
	"fmt"
	"reflect"
)

const (
	// DefaultCapacity is the bucket count a new set starts with. Growth
	// doubles it; an algebra rebuild may replace it with the exact
	// survivor count.
	DefaultCapacity = 10
)

// node is one link of a bucket's collision chain. The bucket array owns
// every node reachable through it; chains are never exposed to callers.
type node[T any] struct {
	value T
	next  *node[T]
}

// DynamicSet is a dynamically resizable set of values backed by a hash
// table with separate chaining. Elements may be of any type; two values
// are the same element when reflect.DeepEqual says so. The set is for
// single-threaded use, callers needing concurrency must serialize around
// the whole instance.
type DynamicSet[T any] struct {
	table  []*node[T]
	size   int // capacity: length of the bucket array
	count  int // live elements across all chains
	format Formatter[T]
}

// New creates a set with the default capacity and union-updates it with
// the supplied initial values, if any.
func New[T any](elems ...T) *DynamicSet[T] {
	s := &DynamicSet[T]{
		table:  make([]*node[T], DefaultCapacity),
		size:   DefaultCapacity,
		format: Describe[T],
	}
	s.UnionUpdate(elems...)
	return s
}

// hashText is the deterministic text form a value hashes by.
func hashText[T any](v T) string {
	return fmt.Sprintf("%v", v)
}

// bucketIndex sums the code points of the value's text form and reduces
// the sum modulo the current capacity. Any two values whose text forms
// are anagrams of each other ("ab" and "ba") collide unconditionally; a
// known weakness of the char-sum hash, kept as-is. Placement is only
// recomputed on growth or an algebra rebuild, so buckets are guaranteed
// hash-consistent immediately after a rebuild and stay put in between.
// Must not be called with a zero capacity.
func (s *DynamicSet[T]) bucketIndex(v T) int {
	sum := 0
	for _, r := range hashText(v) {
		sum += int(r)
	}
	return sum % s.size
}

// grow doubles the capacity and rehashes every live value into a fresh
// bucket array. A zero-capacity set (left behind by an empty algebra
// rebuild) grows straight to the default capacity instead.
func (s *DynamicSet[T]) grow() {
	if s.size == 0 {
		s.size = DefaultCapacity
		s.table = make([]*node[T], s.size)
		return
	}
	oldTable := s.table
	s.size *= 2
	s.table = make([]*node[T], s.size)
	s.count = 0 // Reset count because we'll be re-adding the elements

	for _, curr := range oldTable {
		for curr != nil {
			s.Add(curr.value)
			curr = curr.next
		}
	}
}

// Add inserts a value. Adding a value already present overwrites the
// stored copy in place and leaves the count unchanged.
func (s *DynamicSet[T]) Add(v T) {
	// Check if we need to resize before the insert can land.
	if s.count >= s.size {
		s.grow()
	}

	index := s.bucketIndex(v)
	curr := s.table[index]
	if curr == nil {
		s.table[index] = &node[T]{value: v}
		s.count++
		return
	}
	for curr != nil {
		if reflect.DeepEqual(curr.value, v) {
			curr.value = v // refresh the stored copy
			return
		}
		if curr.next == nil {
			curr.next = &node[T]{value: v}
			s.count++
			return
		}
		curr = curr.next
	}
}

// Remove deletes a value if present. Removing an absent value is a no-op.
func (s *DynamicSet[T]) Remove(v T) {
	if s.size == 0 {
		return
	}

	index := s.bucketIndex(v)
	curr := s.table[index]

	// Special case: the head of the chain is the value to remove.
	if curr != nil && reflect.DeepEqual(curr.value, v) {
		s.table[index] = curr.next
		s.count--
		return
	}

	// Walk looking one node ahead so the predecessor link can be fixed up.
	for curr != nil {
		if curr.next != nil && reflect.DeepEqual(curr.next.value, v) {
			curr.next = curr.next.next
			s.count--
			return
		}
		curr = curr.next
	}
}

// Contains reports whether the value is a member of the set.
func (s *DynamicSet[T]) Contains(v T) bool {
	if s.size == 0 {
		return false
	}
	for curr := s.table[s.bucketIndex(v)]; curr != nil; curr = curr.next {
		if reflect.DeepEqual(curr.value, v) {
			return true
		}
	}
	return false
}

// Len returns the number of elements in the set.
func (s *DynamicSet[T]) Len() int {
	return s.count
}

// Values returns a materialized snapshot of every element, walking the
// buckets in index order and each chain front to back. No order is
// guaranteed across buckets.
func (s *DynamicSet[T]) Values() []T {
	out := make([]T, 0, s.count)
	for _, curr := range s.table {
		for ; curr != nil; curr = curr.next {
			out = append(out, curr.value)
		}
	}
	return out
}
