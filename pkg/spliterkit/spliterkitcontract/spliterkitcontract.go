// Package spliterkitcontract holds the behavioural contract of spliterkit.Spliterator implementations.
package spliterkitcontract

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"

	"go.llib.dev/streamkit/pkg/spliterkit"
)

// maxSplitDepth keeps the random and recursive split traversals finite.
const maxSplitDepth = 10

// Subject is what the Spliterator contract is verified against.
type Subject[T any] struct {
	// MakeSpliterator returns a new Spliterator on each call,
	// which yields the Expected elements.
	MakeSpliterator func() spliterkit.Spliterator[T]
	// Expected is the list of elements every made Spliterator must yield.
	// When the Spliterator reports Ordered, the encounter order must match as well.
	Expected []T
}

// Spliterator verifies that a Spliterator yields the expected elements,
// regardless of how it is traversed or split.
func Spliterator[T any](mk func(testing.TB) Subject[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("TryAdvance yields each element once", func(t *testcase.T) {
		checkTryAdvance(t, subject.Get(t))
	})

	s.Test("ToSeq yields every element", func(t *testcase.T) {
		sub := subject.Get(t)
		it := sub.MakeSpliterator()
		ordered := it.Characteristics().Has(spliterkit.Ordered)
		var got []T
		for v := range spliterkit.ToSeq(it) {
			got = append(got, v)
		}
		requireElements(t, ordered, sub.Expected, got)
	})

	s.Test("ForEachRemaining continues after TryAdvance", func(t *testcase.T) {
		sub := subject.Get(t)
		it := sub.MakeSpliterator()
		ordered := it.Characteristics().Has(spliterkit.Ordered)
		var got []T
		it.TryAdvance(func(v T) { got = append(got, v) })
		spliterkit.ForEachRemaining(it, func(v T) { got = append(got, v) })
		requireElements(t, ordered, sub.Expected, got)
	})

	s.Test("TrySplit pieces together yield every element", func(t *testcase.T) {
		sub := subject.Get(t)
		it := sub.MakeSpliterator()
		ordered := it.Characteristics().Has(spliterkit.Ordered)
		requireElements(t, ordered, sub.Expected, splitAll(t, it, 0))
	})

	s.Test("random mix of TrySplit and TryAdvance yields every element", func(t *testcase.T) {
		sub := subject.Get(t)
		for i := 0; i < 8; i++ {
			it := sub.MakeSpliterator()
			ordered := it.Characteristics().Has(spliterkit.Ordered)
			requireElements(t, ordered, sub.Expected, traverseRandomly(t, it, 0))
		}
	})

	return s.AsSuite("Spliterator")
}

func checkTryAdvance[T any](tb testing.TB, sub Subject[T]) {
	tb.Helper()
	s := sub.MakeSpliterator()
	ordered := s.Characteristics().Has(spliterkit.Ordered)
	var got []T
	for {
		if s.Characteristics().Has(spliterkit.Sized) {
			n, ok := s.ExactSize()
			require.True(tb, ok, "Sized spliterator must know its exact size")
			require.Equal(tb, len(sub.Expected)-len(got), n, "remaining exact size")
		}
		var yielded int
		if !s.TryAdvance(func(v T) {
			yielded++
			got = append(got, v)
		}) {
			require.Equal(tb, 0, yielded, "yield must not be called when TryAdvance reports false")
			break
		}
		require.Equal(tb, 1, yielded, "yield must be called exactly once when TryAdvance reports true")
		require.True(tb, len(got) <= len(sub.Expected), "more elements were yielded than expected")
	}
	requireElements(tb, ordered, sub.Expected, got)
	require.False(tb, s.TryAdvance(func(T) { tb.Fatal("yield called on an exhausted spliterator") }))
}

func splitAll[T any](tb testing.TB, s spliterkit.Spliterator[T], depth int) []T {
	tb.Helper()
	if maxSplitDepth <= depth {
		return spliterkit.Collect(s)
	}
	var (
		subSized  = s.Characteristics().Has(spliterkit.SubSized)
		before, _ = s.ExactSize()
	)
	prefix, ok := s.TrySplit()
	if !ok {
		require.Nil(tb, prefix, "an unsuccessful TrySplit must not return a spliterator")
		return spliterkit.Collect(s)
	}
	require.NotNil(tb, prefix)
	if subSized {
		prefixSize, prefixOK := prefix.ExactSize()
		suffixSize, suffixOK := s.ExactSize()
		require.True(tb, prefixOK && suffixOK, "SubSized spliterator pieces must know their exact size")
		require.Equal(tb, before, prefixSize+suffixSize, "the sizes of the pieces must add up")
	}
	out := splitAll(tb, prefix, depth+1)
	return append(out, splitAll(tb, s, depth+1)...)
}

func traverseRandomly[T any](t *testcase.T, s spliterkit.Spliterator[T], depth int) []T {
	var out []T
	for {
		switch t.Random.IntN(3) {
		case 0:
			if !s.TryAdvance(func(v T) { out = append(out, v) }) {
				return out
			}
		case 1:
			if maxSplitDepth <= depth {
				continue
			}
			if prefix, ok := s.TrySplit(); ok {
				out = append(out, traverseRandomly(t, prefix, depth+1)...)
			}
		default:
			spliterkit.ForEachRemaining(s, func(v T) { out = append(out, v) })
			return out
		}
	}
}

func requireElements[T any](tb testing.TB, ordered bool, expected, actual []T) {
	tb.Helper()
	if len(expected) == 0 {
		require.Empty(tb, actual)
		return
	}
	if ordered {
		require.Equal(tb, expected, actual)
		return
	}
	require.ElementsMatch(tb, expected, actual)
}
