package spliterkit_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/streamkit/pkg/spliterkit"
)

func ExampleCollectParallel() {
	s := spliterkit.IfEmpty(
		spliterkit.Filter(spliterkit.IntRange(1, 1000), func(n int) bool { return n%100 == 0 }),
		spliterkit.IntRange(1, 1000),
	)

	vs, err := spliterkit.CollectParallel[int](context.Background(), s, spliterkit.Workers(4))
	if err != nil {
		panic(err)
	}
	fmt.Println(vs)
	// Output: [100 200 300 400 500 600 700 800 900 1000]
}

func TestPartition(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("leaves keep the encounter order", func(t *testcase.T) {
		leaves := spliterkit.Partition(spliterkit.IntRange(1, 1000), spliterkit.MaxDepth(4))
		t.Must.True(1 < len(leaves))
		t.Must.True(len(leaves) <= 1<<4)

		var got []int
		for _, leaf := range leaves {
			got = append(got, spliterkit.Collect(leaf)...)
		}
		t.Must.Equal(spliterkit.Collect(spliterkit.IntRange(1, 1000)), got)
	})

	s.Test("pieces with a known size under the minimum chunk are not split", func(t *testcase.T) {
		leaves := spliterkit.Partition(spliterkit.IntRange(1, 10), spliterkit.MinChunk(10))
		t.Must.Equal(1, len(leaves))
	})

	s.Test("an undecided IfEmpty is resolved during the partitioning", func(t *testcase.T) {
		subject := spliterkit.IfEmpty(
			spliterkit.Filter(spliterkit.IntRange(1, 10), func(int) bool { return true }),
			spliterkit.IntRange(100, 200),
		)
		leaves := spliterkit.Partition[int](subject, spliterkit.MaxDepth(3))
		t.Must.Equal(spliterkit.ResolvedPrimary, subject.Resolution())

		var got []int
		for _, leaf := range leaves {
			got = append(got, spliterkit.Collect(leaf)...)
		}
		t.Must.Equal(spliterkit.Collect(spliterkit.IntRange(1, 10)), got)
	})

	s.Test("unsplittable spliterator results in a single leaf", func(t *testcase.T) {
		leaves := spliterkit.Partition(spliterkit.One(42))
		t.Must.Equal(1, len(leaves))
	})
}

func TestForEachParallel(t *testing.T) {
	logger.Testing(t)
	s := testcase.NewSpec(t)

	s.Test("every element is visited exactly once", func(t *testcase.T) {
		var (
			m    sync.Mutex
			seen = map[int]int{}
		)
		err := spliterkit.ForEachParallel(context.Background(), spliterkit.IntRange(1, 5000), func(n int) error {
			m.Lock()
			defer m.Unlock()
			seen[n]++
			return nil
		}, spliterkit.Workers(t.Random.IntB(1, 8)))
		t.Must.NoError(err)
		t.Must.Equal(5000, len(seen))
		for n, count := range seen {
			t.Must.Equal(1, count, assert.Message(fmt.Sprintf("%d visited %d times", n, count)))
		}
	})

	s.Test("the first error stops the traversal and is returned", func(t *testcase.T) {
		const ErrBoom errorkit.Error = "boom"
		var visited int32
		err := spliterkit.ForEachParallel(context.Background(), spliterkit.IntRange(1, 5000), func(n int) error {
			atomic.AddInt32(&visited, 1)
			if n == 1 {
				return ErrBoom
			}
			return nil
		}, spliterkit.Workers(1))
		t.Must.ErrorIs(ErrBoom, err)
		t.Must.True(atomic.LoadInt32(&visited) < 5000)
	})

	s.Test("cancelled context", func(t *testcase.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := spliterkit.ForEachParallel(ctx, spliterkit.IntRange(1, 100), func(int) error {
			t.Fatal("no element was expected to be visited")
			return nil
		})
		t.Must.ErrorIs(context.Canceled, err)
	})
}

func TestCollectParallel(t *testing.T) {
	logger.Testing(t)
	s := testcase.NewSpec(t)

	s.Test("elements are collected in encounter order", func(t *testcase.T) {
		data := spliterkit.Collect(spliterkit.IntRange(1, 1000))
		got, err := spliterkit.CollectParallel(context.Background(), spliterkit.Slice(data), spliterkit.Workers(4))
		t.Must.NoError(err)
		t.Must.Equal(data, got)
	})

	s.Test("fallback when primary is empty", func(t *testcase.T) {
		data := spliterkit.Collect(spliterkit.IntRange(1, 1000))
		subject := spliterkit.IfEmpty(
			spliterkit.Filter(spliterkit.Slice(data), func(n int) bool { return n < 0 }),
			spliterkit.Filter(spliterkit.Slice(data), func(n int) bool { return 0 <= n }),
		)
		got, err := spliterkit.CollectParallel[int](context.Background(), subject, spliterkit.Workers(4))
		t.Must.NoError(err)
		t.Must.Equal(data, got)
	})

	s.Test("both empty", func(t *testcase.T) {
		subject := spliterkit.IfEmpty(spliterkit.Empty[int](), spliterkit.Empty[int]())
		got, err := spliterkit.CollectParallel[int](context.Background(), subject)
		t.Must.NoError(err)
		t.Must.Empty(got)
	})
}

func TestParallelConfig_Configure(t *testing.T) {
	c := spliterkit.ParallelConfig{Workers: 2}
	var got spliterkit.ParallelConfig
	spliterkit.ParallelConfig{Workers: 3, MinChunk: 7}.Configure(&got)
	c.Configure(&got)
	assert.Equal(t, spliterkit.ParallelConfig{Workers: 2, MinChunk: 7}, got)
}

func TestParallelConfig_asOption(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a config value can be used as an option", func(t *testcase.T) {
		leaves := spliterkit.Partition(spliterkit.IntRange(1, 1000), spliterkit.ParallelConfig{MaxDepth: 1})
		t.Must.Equal(2, len(leaves))
	})

	s.Test("the later option wins", func(t *testcase.T) {
		leaves := spliterkit.Partition(spliterkit.IntRange(1, 1000),
			spliterkit.ParallelConfig{MaxDepth: 5},
			spliterkit.MaxDepth(1),
		)
		t.Must.Equal(2, len(leaves))
	})

	s.Test("min chunk stops splitting sized pieces", func(t *testcase.T) {
		leaves := spliterkit.Partition(spliterkit.IntRange(1, 10), spliterkit.MaxDepth(10), spliterkit.MinChunk(10))
		t.Must.Equal(1, len(leaves))
	})
}
