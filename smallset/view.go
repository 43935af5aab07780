package smallset

import "iter"

// View is a one-shot forward cursor over a snapshot of elements. Each element
// is handed out once and its slot is cleared; an exhausted view stays
// exhausted.
type View[T any] struct {
	data  []T
	index int
}

func newView[T any](data []T) *View[T] {
	return &View[T]{data: data}
}

// Next returns the next element, or false once the view is exhausted.
func (v *View[T]) Next() (T, bool) {
	var zero T
	if v.index == len(v.data) {
		return zero, false
	}
	item := v.data[v.index]
	v.data[v.index] = zero
	v.index++
	return item, true
}

// Len is the number of elements not yet handed out.
func (v *View[T]) Len() int {
	return len(v.data) - v.index
}

// All yields the remaining elements, consuming each. Breaking out of the loop
// leaves the rest for later calls.
func (v *View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := v.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Collect consumes the remaining elements and returns them.
func (v *View[T]) Collect() []T {
	items := make([]T, 0, v.Len())
	for item := range v.All() {
		items = append(items, item)
	}
	return items
}
