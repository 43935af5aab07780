package hashset

import (
	"iter"
	"maps"
)

// Set is a hash set of items indexed by a comparable key.
//
// Two items are the same set member when their keys are equal. The stored
// item is kept so callers can recover it from an equal probe.
type Set[K comparable, T any] map[K]T

func New[K comparable, T any](size int) Set[K, T] {
	return make(Set[K, T], max(size, 0))
}

// Insert adds item under key unless the key is already present.
func (s Set[K, T]) Insert(key K, item T) bool {
	if s.Contains(key) {
		return false
	}
	s[key] = item
	return true
}

// Replace stores item under key and returns the item it displaced, if any.
func (s Set[K, T]) Replace(key K, item T) (T, bool) {
	old, exists := s[key]
	s[key] = item
	return old, exists
}

func (s Set[K, T]) Get(key K) (T, bool) {
	item, exists := s[key]
	return item, exists
}

func (s Set[K, T]) Take(key K) (T, bool) {
	item, exists := s[key]
	if exists {
		delete(s, key)
	}
	return item, exists
}

func (s Set[K, T]) Remove(key K) bool {
	_, exists := s[key]
	if exists {
		delete(s, key)
	}
	return exists
}

func (s Set[K, T]) Contains(key K) bool {
	_, exists := s[key]
	return exists
}

func (s Set[K, T]) Len() int {
	return len(s)
}

func (s Set[K, T]) Clear() {
	clear(s)
}

// Retain deletes every item for which keep returns false.
func (s Set[K, T]) Retain(keep func(T) bool) {
	maps.DeleteFunc(s, func(_ K, item T) bool {
		return !keep(item)
	})
}

// Values yields the items in no particular order.
func (s Set[K, T]) Values() iter.Seq[T] {
	return maps.Values(s)
}

// Drain empties the set and returns what it held.
func (s Set[K, T]) Drain() []T {
	items := make([]T, 0, len(s))
	for _, item := range s {
		items = append(items, item)
	}
	clear(s)
	return items
}

func (s Set[K, T]) Clone() Set[K, T] {
	clone := make(Set[K, T], len(s))
	maps.Copy(clone, s)
	return clone
}
