package spliterkit

import (
	"context"
	"math/bits"
	"runtime"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/port/option"
	"golang.org/x/sync/errgroup"
)

type ParallelConfig struct {
	// Workers is the maximum number of goroutines traversing leaves at the same time.
	//
	// Default: runtime.GOMAXPROCS(0)
	Workers int
	// MaxDepth limits how many times a piece is split recursively.
	//
	// Default: log2(Workers) + 2
	MaxDepth int
	// MinChunk is the size under which a piece with a known exact size is not split further.
	//
	// Default: 1
	MinChunk int
}

func (c ParallelConfig) Configure(t *ParallelConfig) {
	if 0 < c.Workers {
		t.Workers = c.Workers
	}
	if 0 < c.MaxDepth {
		t.MaxDepth = c.MaxDepth
	}
	if 0 < c.MinChunk {
		t.MinChunk = c.MinChunk
	}
}

var _ option.Option[ParallelConfig] = ParallelConfig{}

type ParallelOption option.Option[ParallelConfig]

func Workers(n int) ParallelOption {
	return option.Func[ParallelConfig](func(c *ParallelConfig) {
		c.Workers = n
	})
}

func MaxDepth(n int) ParallelOption {
	return option.Func[ParallelConfig](func(c *ParallelConfig) {
		c.MaxDepth = n
	})
}

func MinChunk(n int) ParallelOption {
	return option.Func[ParallelConfig](func(c *ParallelConfig) {
		c.MinChunk = n
	})
}

func (c ParallelConfig) getWorkers() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

func (c ParallelConfig) getMaxDepth() int {
	if c.MaxDepth <= 0 {
		return bits.Len(uint(c.getWorkers())) + 2
	}
	return c.MaxDepth
}

func (c ParallelConfig) getMinChunk() int {
	if c.MinChunk <= 0 {
		return 1
	}
	return c.MinChunk
}

// Partition splits the Spliterator on the calling goroutine,
// and returns the pieces in encounter order.
// The last piece is always the original Spliterator.
func Partition[T any](s Spliterator[T], opts ...ParallelOption) []Spliterator[T] {
	c := option.ToConfig[ParallelConfig](opts)
	return partition(s, c.getMaxDepth(), c.getMinChunk(), nil)
}

func partition[T any](s Spliterator[T], depth, minChunk int, leaves []Spliterator[T]) []Spliterator[T] {
	for ; 0 < depth; depth-- {
		if n, ok := s.ExactSize(); ok && n <= minChunk {
			break
		}
		prefix, ok := s.TrySplit()
		if !ok {
			break
		}
		leaves = partition(prefix, depth-1, minChunk, leaves)
	}
	return append(leaves, s)
}

// ForEachParallel partitions the Spliterator, then traverses the pieces concurrently.
// The order in which fn receives the elements is not defined.
// The first error returned by fn, or the cancellation of the context, stops the traversal.
func ForEachParallel[T any](ctx context.Context, s Spliterator[T], fn func(T) error, opts ...ParallelOption) error {
	c := option.ToConfig[ParallelConfig](opts)
	leaves := partition(s, c.getMaxDepth(), c.getMinChunk(), nil)
	logger.Debug(ctx, "spliterkit: parallel traversal", logging.Fields{
		"leaves":  len(leaves),
		"workers": c.getWorkers(),
	})
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.getWorkers())
	for _, leaf := range leaves {
		g.Go(func() error { return traverse(ctx, leaf, fn) })
	}
	return g.Wait()
}

// CollectParallel collects the elements of the Spliterator concurrently,
// and returns them in encounter order.
func CollectParallel[T any](ctx context.Context, s Spliterator[T], opts ...ParallelOption) ([]T, error) {
	c := option.ToConfig[ParallelConfig](opts)
	leaves := partition(s, c.getMaxDepth(), c.getMinChunk(), nil)
	logger.Debug(ctx, "spliterkit: parallel collect", logging.Fields{
		"leaves":  len(leaves),
		"workers": c.getWorkers(),
	})
	var results = make([][]T, len(leaves))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.getWorkers())
	for i, leaf := range leaves {
		g.Go(func() error {
			return traverse(ctx, leaf, func(v T) error {
				results[i] = append(results[i], v)
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var total int
	for _, vs := range results {
		total += len(vs)
	}
	var out = make([]T, 0, total)
	for _, vs := range results {
		out = append(out, vs...)
	}
	return out, nil
}

func traverse[T any](ctx context.Context, s Spliterator[T], fn func(T) error) error {
	var err error
	for err == nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !s.TryAdvance(func(v T) { err = fn(v) }) {
			return nil
		}
	}
	return err
}
