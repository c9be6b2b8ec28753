package spliterkit

// Resolution tells which Spliterator an IfEmptySpliterator delegates to.
type Resolution int

const (
	// Undecided means neither Spliterator was chosen yet.
	Undecided Resolution = iota
	// ResolvedPrimary means the primary Spliterator had at least one element.
	ResolvedPrimary
	// ResolvedSecondary means the primary Spliterator was empty, and the secondary is used.
	ResolvedSecondary
)

func (r Resolution) String() string {
	switch r {
	case Undecided:
		return "undecided"
	case ResolvedPrimary:
		return "primary"
	case ResolvedSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// IfEmpty returns a Spliterator that yields the elements of primary,
// or when primary turns out to be empty, the elements of secondary.
//
// Both Spliterators are owned by the returned value from this point.
// Nothing is consumed upfront.
// The decision is made on the first TryAdvance or TrySplit call, by attempting to advance primary once,
// and the element received from that attempt is delivered to the caller.
// After the decision, every call is delegated to the chosen Spliterator.
func IfEmpty[T any](primary, secondary Spliterator[T]) *IfEmptySpliterator[T] {
	return &IfEmptySpliterator[T]{
		resolution: Undecided,
		delegate:   primary,
		secondary:  secondary,
	}
}

// IfEmptyValues returns a Spliterator that yields the elements of primary,
// or the given values when primary is empty.
func IfEmptyValues[T any](primary Spliterator[T], vs ...T) *IfEmptySpliterator[T] {
	return IfEmpty(primary, Of(vs...))
}

// IfEmptySpliterator is the Spliterator returned by IfEmpty.
type IfEmptySpliterator[T any] struct {
	resolution Resolution
	// delegate is the primary until the resolution is made.
	delegate Spliterator[T]
	// secondary is nil once resolved.
	secondary Spliterator[T]
}

// Resolution reports whether the decision between primary and secondary was already made.
func (s *IfEmptySpliterator[T]) Resolution() Resolution {
	return s.resolution
}

func (s *IfEmptySpliterator[T]) TryAdvance(yield func(T)) bool {
	if s.resolution == Undecided {
		if s.delegate.TryAdvance(func(v T) {
			s.resolve(ResolvedPrimary)
			yield(v)
		}) {
			s.resolve(ResolvedPrimary)
			return true
		}
		s.resolve(ResolvedSecondary)
	}
	return s.delegate.TryAdvance(yield)
}

// TrySplit is the only query that consumes while undecided.
// It forces the resolution by advancing primary,
// so no piece with an ambiguous source is handed out to another goroutine.
// An element received from primary is returned as a single element prefix,
// and the receiver continues with the rest of primary.
func (s *IfEmptySpliterator[T]) TrySplit() (Spliterator[T], bool) {
	if s.resolution == Undecided {
		var (
			head   T
			pulled bool
		)
		s.delegate.TryAdvance(func(v T) {
			head = v
			pulled = true
		})
		if pulled {
			s.resolve(ResolvedPrimary)
			return One(head, s.delegate.Characteristics()), true
		}
		s.resolve(ResolvedSecondary)
	}
	return s.delegate.TrySplit()
}

// ExactSize never consumes an element.
// While undecided, the size is only known when primary knows its own size,
// because then its emptiness is known as well, and the resolution can be made without advancing it.
func (s *IfEmptySpliterator[T]) ExactSize() (int, bool) {
	if s.resolution == Undecided {
		n, ok := s.delegate.ExactSize()
		if !ok {
			return unknownSize, false
		}
		if 0 < n {
			s.resolve(ResolvedPrimary)
			return n, true
		}
		s.resolve(ResolvedSecondary)
	}
	return s.delegate.ExactSize()
}

// Characteristics never makes the resolution.
// While undecided, only what both outcomes guarantee is reported,
// except Sorted and Distinct, which depend on which side wins.
// A secondary that is known to be empty guarantees anything,
// so in that case the characteristics of primary are used.
// The size of secondary is only asked when it reports Sized.
// A nested IfEmptySpliterator reports Sized only when its own size is already decidable without consumption.
func (s *IfEmptySpliterator[T]) Characteristics() Characteristics {
	if s.resolution != Undecided {
		return s.delegate.Characteristics()
	}
	var (
		cs    = s.delegate.Characteristics()
		other = s.secondary.Characteristics()
	)
	if !knownEmpty(s.secondary, other) {
		cs &= other
	}
	return cs &^ (Sorted | Distinct)
}

func knownEmpty[T any](sp Spliterator[T], cs Characteristics) bool {
	if !cs.Has(Sized) {
		return false
	}
	n, ok := sp.ExactSize()
	return ok && n == 0
}

func (s *IfEmptySpliterator[T]) resolve(r Resolution) {
	if s.resolution != Undecided {
		return
	}
	if r == ResolvedSecondary {
		s.delegate = s.secondary
	}
	s.secondary = nil
	s.resolution = r
}
