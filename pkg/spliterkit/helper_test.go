package spliterkit_test

import (
	"testing"

	"go.llib.dev/frameless/port/contract"

	"go.llib.dev/streamkit/pkg/spliterkit"
	"go.llib.dev/streamkit/pkg/spliterkit/spliterkitcontract"
)

func spliteratorContract[T any](expected []T, mk func() spliterkit.Spliterator[T]) contract.Contract {
	return spliterkitcontract.Spliterator(func(testing.TB) spliterkitcontract.Subject[T] {
		return spliterkitcontract.Subject[T]{MakeSpliterator: mk, Expected: expected}
	})
}
