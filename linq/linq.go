package linq

import "iter"

// ========== Where ==========

func Where[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			if pred(item) && !yield(item) {
				return
			}
		}
	}
}

// ========== All ==========

// All reports whether pred holds for every item. An empty sequence satisfies it.
func All[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for item := range seq {
		if !pred(item) {
			return false
		}
	}
	return true
}

// ========== Any ==========

func Any[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for item := range seq {
		if pred(item) {
			return true
		}
	}
	return false
}
