package thread

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

type config struct {
	workers int
}

// Option configures [ForEach] and [MapSlice].
type Option func(*config)

// WithWorkers bounds the number of items processed concurrently. The
// default is [NumCPU]. WithWorkers panics if n is not positive.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n <= 0 {
			panic("thread: workers must be positive")
		}
		c.workers = n
	}
}

// ForEach applies fn to every item concurrently, at most workers items
// at a time (default [NumCPU]). The first error cancels the context
// passed to still-pending items and is returned after all started items
// settle. A panic in fn propagates to the caller after the remaining
// items settle, as in [Join].
func ForEach[T any](ctx context.Context, items []T, fn func(context.Context, T) error, opts ...Option) error {
	cfg := config{workers: NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}

	sem := semaphore.NewWeighted(int64(cfg.workers))
	g, ctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	var first *PanicError
	for _, item := range items {
		g.Go(func() (err error) {
			if err := sem.Acquire(ctx, 1); err != nil {
				// Cancelled while queued. When a sibling's error caused
				// it, first-error-wins keeps that error on top; when the
				// caller's context did, this surfaces it instead of
				// passing off skipped items as success.
				return err
			}
			defer sem.Release(1)
			defer func() {
				if r := recover(); r != nil {
					pe := NewPanicError(r)
					mu.Lock()
					if first == nil {
						first = pe
					}
					mu.Unlock()
				}
			}()
			return fn(ctx, item)
		})
	}
	err := g.Wait()
	if first != nil {
		panic(first)
	}
	return err
}

// MapSlice transforms every item concurrently and returns the results in
// input order. Concurrency, cancellation, and panic behavior match
// [ForEach]. On error the partial results are discarded and nil is
// returned.
func MapSlice[T, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error), opts ...Option) ([]R, error) {
	results := make([]R, len(items))
	err := ForEach(ctx, indexes(len(items)), func(ctx context.Context, i int) error {
		r, err := fn(ctx, items[i])
		if err != nil {
			return err
		}
		results[i] = r // each index is written by exactly one goroutine
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func indexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
