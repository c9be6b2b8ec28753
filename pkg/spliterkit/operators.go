package spliterkit

// Filter returns a Spliterator that only yields the elements where keep returns true.
// The number of matching elements is unknown until traversal,
// thus Sized and SubSized are never reported.
// Splitting is delegated to the source, and both pieces are filtered.
func Filter[T any](s Spliterator[T], keep func(T) bool) Spliterator[T] {
	return &filterSpliterator[T]{source: s, keep: keep}
}

type filterSpliterator[T any] struct {
	source Spliterator[T]
	keep   func(T) bool
}

func (s *filterSpliterator[T]) TryAdvance(yield func(T)) bool {
	var matched bool
	for !matched {
		if !s.source.TryAdvance(func(v T) {
			if s.keep(v) {
				matched = true
				yield(v)
			}
		}) {
			return false
		}
	}
	return true
}

func (s *filterSpliterator[T]) TrySplit() (Spliterator[T], bool) {
	prefix, ok := s.source.TrySplit()
	if !ok {
		return nil, false
	}
	return &filterSpliterator[T]{source: prefix, keep: s.keep}, true
}

func (s *filterSpliterator[T]) ExactSize() (int, bool) { return unknownSize, false }

func (s *filterSpliterator[T]) Characteristics() Characteristics {
	return s.source.Characteristics() &^ (Sized | SubSized)
}

// Map returns a Spliterator that yields the transformed elements of the source.
// The size is kept, but the order, uniqueness and nil guarantees of the source no longer apply.
func Map[To, From any](s Spliterator[From], transform func(From) To) Spliterator[To] {
	return &mapSpliterator[To, From]{source: s, transform: transform}
}

type mapSpliterator[To, From any] struct {
	source    Spliterator[From]
	transform func(From) To
}

func (s *mapSpliterator[To, From]) TryAdvance(yield func(To)) bool {
	return s.source.TryAdvance(func(v From) { yield(s.transform(v)) })
}

func (s *mapSpliterator[To, From]) TrySplit() (Spliterator[To], bool) {
	prefix, ok := s.source.TrySplit()
	if !ok {
		return nil, false
	}
	return &mapSpliterator[To, From]{source: prefix, transform: s.transform}, true
}

func (s *mapSpliterator[To, From]) ExactSize() (int, bool) { return s.source.ExactSize() }

func (s *mapSpliterator[To, From]) Characteristics() Characteristics {
	return s.source.Characteristics() &^ (Sorted | Distinct | NonNull)
}
