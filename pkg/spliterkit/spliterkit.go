// Package spliterkit provides splittable lazy iterators.
//
// # Summary
//
// A Spliterator yields the elements of a sequence on demand,
// and it can optionally hand over a part of its remaining work to an independent Spliterator.
// That makes it suitable both for sequential traversal and for work-splitting parallel traversal,
// where a single goroutine partitions the sequence, and the pieces are traversed concurrently.
//
// Alongside the elements, a Spliterator reports what it knows about the remaining elements:
// their exact count, if known, and a set of Characteristics,
// such as whether they are ordered, sorted or distinct.
// Downstream consumers use this metadata to choose cheaper algorithms.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Fork%E2%80%93join_model
package spliterkit

import (
	"iter"
)

// Spliterator is a lazy, optionally splittable element producer.
//
// A Spliterator is owned by a single caller.
// Pieces returned by TrySplit are independent from their origin and can be handed to another goroutine.
type Spliterator[T any] interface {
	// TryAdvance will call yield with the next element and report true,
	// or report false without calling yield when no element remains.
	TryAdvance(yield func(T)) bool
	// TrySplit will split off a prefix of the remaining elements into a new Spliterator.
	// The receiver keeps the rest.
	// When the Spliterator can't be split, it returns false.
	TrySplit() (Spliterator[T], bool)
	// ExactSize returns the number of the remaining elements when it is known.
	ExactSize() (int, bool)
	// Characteristics reports the guarantees about the remaining elements.
	Characteristics() Characteristics
}

// unknownSize is the size reported along with a false ExactSize result.
const unknownSize = -1

// ToSeq will turn a Spliterator into an iter.Seq.
// The returned sequence is single use, as it consumes the Spliterator.
func ToSeq[T any](s Spliterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var done bool
		for !done && s.TryAdvance(func(v T) { done = !yield(v) }) {
		}
	}
}

// ForEachRemaining will call fn with every remaining element of the Spliterator.
func ForEachRemaining[T any](s Spliterator[T], fn func(T)) {
	for s.TryAdvance(fn) {
	}
}

// Collect will consume the Spliterator and return its remaining elements.
func Collect[T any](s Spliterator[T]) []T {
	if s == nil {
		return nil
	}
	var vs = make([]T, 0)
	if n, ok := s.ExactSize(); ok {
		vs = make([]T, 0, n)
	}
	ForEachRemaining(s, func(v T) { vs = append(vs, v) })
	return vs
}

// Count will consume the Spliterator and return the number of its remaining elements.
// When the size is known upfront, no element is consumed.
func Count[T any](s Spliterator[T]) int {
	if s.Characteristics().Has(Sized) {
		if n, ok := s.ExactSize(); ok {
			return n
		}
	}
	var total int
	ForEachRemaining(s, func(T) { total++ })
	return total
}
