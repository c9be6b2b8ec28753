package spliterkit

import (
	"iter"
)

const (
	pullBatchUnit = 1 << 10
	pullMaxBatch  = 1 << 25
)

// FromPull turns a pull style iterator into a Spliterator.
// The size of the sequence is unknown, thus Sized and SubSized are not reported,
// even if they are part of the optional characteristics.
//
// A pull source can't be split in itself,
// so TrySplit pulls a batch of elements into memory and splits those off.
// Each batch is larger than the previous one to keep the overhead low on long sequences.
func FromPull[T any](next func() (T, bool), cs ...Characteristics) Spliterator[T] {
	return &pullSpliterator[T]{
		next:  next,
		size:  unknownSize,
		chars: join(cs) &^ (Sized | SubSized),
	}
}

// FromPullN is like FromPull, but for sources that know their remaining size upfront.
// It reports Sized and SubSized.
// The source must yield exactly n elements.
func FromPullN[T any](next func() (T, bool), n int, cs ...Characteristics) Spliterator[T] {
	return &pullSpliterator[T]{
		next:  next,
		size:  n,
		chars: join(cs) | Sized | SubSized,
	}
}

// FromSeq turns an iter.Seq into a single use Spliterator with the help of iter.Pull.
// The returned stop function must be called when the Spliterator is no longer used.
func FromSeq[T any](seq iter.Seq[T]) (Spliterator[T], func()) {
	next, stop := iter.Pull(seq)
	return FromPull(next, Ordered), stop
}

// FromSeqE turns an iter.Seq2[T, error] into a single use Spliterator with the help of iter.Pull2.
// The traversal ends at the first error yielded by the sequence, and Err reports it.
// A Spliterator can't tell an error apart from the end of its elements,
// so a consumer that must not treat a failed source as empty checks Err.
// Stop must be called when the Spliterator is no longer used.
func FromSeqE[T any](seq iter.Seq2[T, error], cs ...Characteristics) *SeqESpliterator[T] {
	next, stop := iter.Pull2(seq)
	s := &SeqESpliterator[T]{stop: stop}
	s.pullSpliterator = pullSpliterator[T]{
		next: func() (T, bool) {
			v, err, ok := next()
			if ok && err != nil {
				s.err = err
				var zero T
				return zero, false
			}
			return v, ok
		},
		size:  unknownSize,
		chars: join(cs) &^ (Sized | SubSized),
	}
	return s
}

type SeqESpliterator[T any] struct {
	pullSpliterator[T]
	err  error
	stop func()
}

// Err returns the error that ended the traversal, if any.
func (s *SeqESpliterator[T]) Err() error { return s.err }

func (s *SeqESpliterator[T]) Stop() { s.stop() }

type pullSpliterator[T any] struct {
	next  func() (T, bool)
	batch int
	size  int
	done  bool
	chars Characteristics
}

func (s *pullSpliterator[T]) TryAdvance(yield func(T)) bool {
	if s.done {
		return false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		return false
	}
	if 0 < s.size {
		s.size--
	}
	yield(v)
	return true
}

func (s *pullSpliterator[T]) TrySplit() (Spliterator[T], bool) {
	if s.done {
		return nil, false
	}
	n := s.batch + pullBatchUnit
	if pullMaxBatch < n {
		n = pullMaxBatch
	}
	if s.chars.Has(Sized) && s.size < n {
		n = s.size
	}
	var vs = make([]T, 0, min(n, pullBatchUnit))
	for len(vs) < n {
		v, ok := s.next()
		if !ok {
			s.done = true
			break
		}
		vs = append(vs, v)
	}
	if len(vs) == 0 {
		return nil, false
	}
	s.batch = n
	if s.chars.Has(Sized) {
		s.size -= len(vs)
	}
	return &sliceSpliterator[T]{
		values: vs,
		index:  0,
		fence:  len(vs),
		chars:  s.chars | Sized | SubSized,
	}, true
}

func (s *pullSpliterator[T]) ExactSize() (int, bool) {
	if !s.chars.Has(Sized) {
		return unknownSize, false
	}
	if s.done {
		return 0, true
	}
	return s.size, true
}

func (s *pullSpliterator[T]) Characteristics() Characteristics { return s.chars }
