package smallset

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/adm87/collections/hashset"
)

// Mode reports which storage a set is using.
type Mode uint8

const (
	// Inline sets keep their elements in a fixed-capacity slice and find
	// them by linear scan.
	Inline Mode = iota
	// Heap sets keep their elements in a hash table. A set never leaves
	// this mode once it enters it.
	Heap
)

func (m Mode) String() string {
	switch m {
	case Inline:
		return "inline"
	case Heap:
		return "heap"
	}
	return "unknown"
}

// KeyedSet is an unordered set tuned for a handful of elements.
//
// Elements are equal when their keys are equal. Up to InlineCap elements are
// stored in a slice allocated once at that capacity and scanned linearly.
// The insert that would exceed InlineCap moves every element into a hash
// table keyed by K, and the set stays there for the rest of its life.
//
// A KeyedSet is not safe for concurrent use. Sets must be created with
// NewKeyed, New or one of the bulk constructors.
type KeyedSet[T any, K comparable] struct {
	_ [0]func() // no ==, use Equal

	mode   Mode
	n      int
	key    func(T) K
	inline []T
	heap   hashset.Set[K, T]
}

// Set is a KeyedSet whose elements are their own keys.
type Set[T comparable] = KeyedSet[T, T]

// NewKeyed creates an empty set that promotes to a hash table once it would
// hold more than n elements.
//
// Panics if key is nil.
func NewKeyed[T any, K comparable](n int, key func(T) K) *KeyedSet[T, K] {
	if key == nil {
		panic("smallset: key function must not be nil")
	}
	return &KeyedSet[T, K]{
		n:   max(n, 0),
		key: key,
	}
}

// New creates an empty set with an inline capacity of n.
func New[T comparable](n int) *Set[T] {
	return NewKeyed(n, identity[T])
}

func identity[T comparable](v T) T { return v }

// KeyedFrom builds a set by inserting every element of seq in turn.
func KeyedFrom[T any, K comparable](n int, key func(T) K, seq iter.Seq[T]) *KeyedSet[T, K] {
	s := NewKeyed(n, key)
	s.Extend(seq)
	return s
}

func From[T comparable](n int, seq iter.Seq[T]) *Set[T] {
	return KeyedFrom(n, identity[T], seq)
}

func Of[T comparable](n int, elems ...T) *Set[T] {
	return From(n, slices.Values(elems))
}

func (s *KeyedSet[T, K]) Mode() Mode {
	return s.mode
}

// InlineCap is the largest number of elements the set holds before promoting.
func (s *KeyedSet[T, K]) InlineCap() int {
	return s.n
}

func (s *KeyedSet[T, K]) Len() int {
	if s.mode == Heap {
		return s.heap.Len()
	}
	return len(s.inline)
}

func (s *KeyedSet[T, K]) IsEmpty() bool {
	return s.Len() == 0
}

func (s *KeyedSet[T, K]) index(k K) int {
	return slices.IndexFunc(s.inline, func(e T) bool {
		return s.key(e) == k
	})
}

// Insert adds elem and reports whether no equal element was present. An
// existing equal element is left untouched.
func (s *KeyedSet[T, K]) Insert(elem T) bool {
	k := s.key(elem)
	if s.mode == Heap {
		return s.heap.Insert(k, elem)
	}

	if s.index(k) >= 0 {
		return false
	}
	if len(s.inline)+1 > s.n {
		s.promote(k, elem)
		return true
	}
	if s.inline == nil {
		s.inline = make([]T, 0, s.n)
	}
	s.inline = append(s.inline, elem)
	return true
}

// promote moves the inline elements and elem into a new hash table. The
// table is complete before the set switches to it.
func (s *KeyedSet[T, K]) promote(k K, elem T) {
	heap := hashset.New[K, T](len(s.inline) + 1)
	for _, e := range s.inline {
		heap.Insert(s.key(e), e)
	}
	heap.Insert(k, elem)

	s.heap = heap
	s.inline = nil
	s.mode = Heap
}

// Extend inserts every element of seq and returns how many were new.
func (s *KeyedSet[T, K]) Extend(seq iter.Seq[T]) int {
	added := 0
	for elem := range seq {
		if s.Insert(elem) {
			added++
		}
	}
	return added
}

func (s *KeyedSet[T, K]) Remove(elem T) bool {
	_, ok := s.Take(elem)
	return ok
}

func (s *KeyedSet[T, K]) Contains(elem T) bool {
	k := s.key(elem)
	if s.mode == Heap {
		return s.heap.Contains(k)
	}
	return s.index(k) >= 0
}

// Get returns the stored element equal to elem. With a projecting key the
// stored element may differ from the probe.
func (s *KeyedSet[T, K]) Get(elem T) (T, bool) {
	k := s.key(elem)
	if s.mode == Heap {
		return s.heap.Get(k)
	}
	if i := s.index(k); i >= 0 {
		return s.inline[i], true
	}
	var zero T
	return zero, false
}

// Take removes and returns the stored element equal to elem.
func (s *KeyedSet[T, K]) Take(elem T) (T, bool) {
	k := s.key(elem)
	if s.mode == Heap {
		return s.heap.Take(k)
	}
	i := s.index(k)
	if i < 0 {
		var zero T
		return zero, false
	}
	old := s.inline[i]
	s.inline = slices.Delete(s.inline, i, i+1)
	return old, true
}

// Replace stores elem in place of the equal element and returns the element
// it displaced. If there was none, elem is inserted as by Insert.
func (s *KeyedSet[T, K]) Replace(elem T) (T, bool) {
	k := s.key(elem)
	if s.mode == Heap {
		return s.heap.Replace(k, elem)
	}
	if i := s.index(k); i >= 0 {
		old := s.inline[i]
		s.inline[i] = elem
		return old, true
	}
	s.Insert(elem)
	var zero T
	return zero, false
}

// Clear removes all elements. A heap set stays a heap set.
func (s *KeyedSet[T, K]) Clear() {
	if s.mode == Heap {
		s.heap.Clear()
		return
	}
	clear(s.inline)
	s.inline = s.inline[:0]
}

// Retain removes every element for which keep returns false. Inline sets keep
// the relative order of the survivors.
func (s *KeyedSet[T, K]) Retain(keep func(T) bool) {
	if s.mode == Heap {
		s.heap.Retain(keep)
		return
	}
	s.inline = slices.DeleteFunc(s.inline, func(e T) bool {
		return !keep(e)
	})
}

// Drain empties the set and returns its former elements as a one-shot view.
// The set keeps its mode.
func (s *KeyedSet[T, K]) Drain() *View[T] {
	if s.mode == Heap {
		return newView(s.heap.Drain())
	}
	elems := slices.Clone(s.inline)
	s.Clear()
	return newView(elems)
}

// All yields every element. Inline sets yield in insertion order, heap sets
// in no particular order. The set must not be modified during iteration.
func (s *KeyedSet[T, K]) All() iter.Seq[T] {
	if s.mode == Heap {
		return s.heap.Values()
	}
	return slices.Values(s.inline)
}

// Slice returns the elements in the order All yields them.
func (s *KeyedSet[T, K]) Slice() []T {
	if s.mode == Heap {
		return slices.AppendSeq(make([]T, 0, s.heap.Len()), s.heap.Values())
	}
	return slices.Clone(s.inline)
}

// Clone returns a set with the same mode, capacity and elements. The elements
// themselves are copied by assignment.
func (s *KeyedSet[T, K]) Clone() *KeyedSet[T, K] {
	c := &KeyedSet[T, K]{
		mode: s.mode,
		n:    s.n,
		key:  s.key,
	}
	if s.mode == Heap {
		c.heap = s.heap.Clone()
		return c
	}
	if s.inline != nil {
		c.inline = make([]T, len(s.inline), s.n)
		copy(c.inline, s.inline)
	}
	return c
}

// String renders the elements as "[a, b, c]" using %v for each one, in the
// order All yields them. Heap sets have no stable order, so the output is
// for diagnostics only.
func (s *KeyedSet[T, K]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for e := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')
	return b.String()
}
