package pandigital

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// CheckAll evaluates values on at most workers goroutines and returns the
// results in input order. It stops early and returns the context error when
// ctx is cancelled.
func CheckAll(ctx context.Context, v *Validator, values []string, workers int) ([]bool, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkers
	}

	results := make([]bool, len(values))
	if len(values) == 0 {
		return results, nil
	}

	chunk := (len(values) + workers - 1) / workers

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(values); start += chunk {
		end := min(start+chunk, len(values))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gCtx.Err(); err != nil {
					return err
				}
				results[i] = v.IsPandigital(values[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
