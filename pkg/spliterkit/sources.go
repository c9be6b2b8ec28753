package spliterkit

import "math"

// Empty Spliterator is used to represent an empty sequence with Null object pattern.
func Empty[T any]() Spliterator[T] {
	return emptySpliterator[T]{}
}

type emptySpliterator[T any] struct{}

func (emptySpliterator[T]) TryAdvance(func(T)) bool          { return false }
func (emptySpliterator[T]) TrySplit() (Spliterator[T], bool) { return nil, false }
func (emptySpliterator[T]) ExactSize() (int, bool)           { return 0, true }
func (emptySpliterator[T]) Characteristics() Characteristics { return Sized | SubSized }

// One returns a Spliterator that yields v and nothing else.
// The optional characteristics are reported along with Sized and SubSized.
func One[T any](v T, cs ...Characteristics) Spliterator[T] {
	return &oneSpliterator[T]{value: v, chars: join(cs) | Sized | SubSized}
}

type oneSpliterator[T any] struct {
	value T
	done  bool
	chars Characteristics
}

func (s *oneSpliterator[T]) TryAdvance(yield func(T)) bool {
	if s.done {
		return false
	}
	s.done = true
	yield(s.value)
	return true
}

func (s *oneSpliterator[T]) TrySplit() (Spliterator[T], bool) { return nil, false }

func (s *oneSpliterator[T]) ExactSize() (int, bool) {
	if s.done {
		return 0, true
	}
	return 1, true
}

func (s *oneSpliterator[T]) Characteristics() Characteristics { return s.chars }

// Of returns an ordered Spliterator over the given values.
func Of[T any](vs ...T) Spliterator[T] {
	return Slice(vs)
}

// Slice returns an ordered Spliterator over the elements of the slice.
// The slice is not copied, and it must not be modified while the Spliterator is in use.
// The optional characteristics are reported along with Ordered, Sized and SubSized.
func Slice[T any](vs []T, cs ...Characteristics) Spliterator[T] {
	return &sliceSpliterator[T]{
		values: vs,
		index:  0,
		fence:  len(vs),
		chars:  join(cs) | Ordered | Sized | SubSized,
	}
}

type sliceSpliterator[T any] struct {
	values []T
	index  int
	fence  int
	chars  Characteristics
}

func (s *sliceSpliterator[T]) TryAdvance(yield func(T)) bool {
	if s.fence <= s.index {
		return false
	}
	v := s.values[s.index]
	s.index++
	yield(v)
	return true
}

func (s *sliceSpliterator[T]) TrySplit() (Spliterator[T], bool) {
	lo, mid := s.index, s.index+(s.fence-s.index)/2
	if mid <= lo {
		return nil, false
	}
	prefix := &sliceSpliterator[T]{
		values: s.values,
		index:  lo,
		fence:  mid,
		chars:  s.chars,
	}
	s.index = mid
	return prefix, true
}

func (s *sliceSpliterator[T]) ExactSize() (int, bool) {
	return s.fence - s.index, true
}

func (s *sliceSpliterator[T]) Characteristics() Characteristics { return s.chars }

// IntRange returns a Spliterator that will range between the specified `begin` and the `end` int, both inclusive.
// When begin is greater than end, the range is empty.
//
// A range with more elements than math.MaxInt can't report its exact size,
// so Sized and SubSized are only reported once the remaining part fits into an int.
func IntRange(begin, end int) Spliterator[int] {
	return &intRangeSpliterator{next: begin, last: end, done: end < begin}
}

type intRangeSpliterator struct {
	next int
	last int
	done bool
}

// span is the number of remaining elements minus one.
func (s *intRangeSpliterator) span() uint {
	return uint(s.last) - uint(s.next)
}

func (s *intRangeSpliterator) TryAdvance(yield func(int)) bool {
	if s.done {
		return false
	}
	v := s.next
	if s.next == s.last {
		s.done = true
	} else {
		s.next++
	}
	yield(v)
	return true
}

func (s *intRangeSpliterator) TrySplit() (Spliterator[int], bool) {
	if s.done {
		return nil, false
	}
	span := s.span()
	if span == 0 {
		return nil, false
	}
	half := span/2 + span&1
	prefix := &intRangeSpliterator{next: s.next, last: int(uint(s.next) + half - 1)}
	s.next = int(uint(s.next) + half)
	return prefix, true
}

func (s *intRangeSpliterator) ExactSize() (int, bool) {
	if s.done {
		return 0, true
	}
	span := s.span()
	if uint(math.MaxInt) <= span {
		return unknownSize, false
	}
	return int(span) + 1, true
}

func (s *intRangeSpliterator) Characteristics() Characteristics {
	const cs = Ordered | Sorted | Distinct | NonNull | Immutable
	if _, ok := s.ExactSize(); !ok {
		return cs
	}
	return cs | Sized | SubSized
}

func join(cs []Characteristics) Characteristics {
	var c Characteristics
	for _, oth := range cs {
		c |= oth
	}
	return c
}
