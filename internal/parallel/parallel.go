// Package parallel provides parallel execution helpers.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Map calls fn for indices [0, n) using at most workers goroutines and
// collects the results in index order. The first error cancels ctx for
// the remaining calls and is returned.
//
// fn must not share mutable state between indices; in particular each call
// owns any generator it draws from.
func Map[T any](ctx context.Context, n, workers int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]T, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := fn(ctx, i)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
