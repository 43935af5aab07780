package smallset

import (
	"slices"

	"github.com/adm87/collections/linq"
)

// Set algebra snapshots its result when called. Membership is decided with
// Contains on the operands, so the mode of either set does not matter.

// Intersection returns the elements of s that are also in other.
func (s *KeyedSet[T, K]) Intersection(other *KeyedSet[T, K]) *View[T] {
	return newView(slices.Collect(linq.Where(s.All(), other.Contains)))
}

// Union returns every element of s followed by the elements of other that
// s lacks.
func (s *KeyedSet[T, K]) Union(other *KeyedSet[T, K]) *View[T] {
	data := make([]T, 0, s.Len()+other.Len())
	data = slices.AppendSeq(data, s.All())
	data = slices.AppendSeq(data, linq.Where(other.All(), s.lacks))
	return newView(data)
}

// Difference returns the elements of s that are not in other.
func (s *KeyedSet[T, K]) Difference(other *KeyedSet[T, K]) *View[T] {
	return newView(slices.Collect(linq.Where(s.All(), other.lacks)))
}

// SymmetricDifference returns the elements that are in exactly one of s and
// other.
func (s *KeyedSet[T, K]) SymmetricDifference(other *KeyedSet[T, K]) *View[T] {
	data := slices.Collect(linq.Where(s.All(), other.lacks))
	data = slices.AppendSeq(data, linq.Where(other.All(), s.lacks))
	return newView(data)
}

func (s *KeyedSet[T, K]) lacks(elem T) bool {
	return !s.Contains(elem)
}

// Equal reports whether both sets hold the same elements, whatever their
// modes.
func (s *KeyedSet[T, K]) Equal(other *KeyedSet[T, K]) bool {
	if s == other {
		return true
	}
	if s.Len() != other.Len() {
		return false
	}
	return linq.All(other.All(), s.Contains)
}

// Subset reports whether every element of s is in other.
func (s *KeyedSet[T, K]) Subset(other *KeyedSet[T, K]) bool {
	if s.Len() > other.Len() {
		return false
	}
	return linq.All(s.All(), other.Contains)
}

// Superset reports whether every element of other is in s.
func (s *KeyedSet[T, K]) Superset(other *KeyedSet[T, K]) bool {
	return other.Subset(s)
}

// Disjoint reports whether s and other share no element.
func (s *KeyedSet[T, K]) Disjoint(other *KeyedSet[T, K]) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	return !linq.Any(small.All(), large.Contains)
}
