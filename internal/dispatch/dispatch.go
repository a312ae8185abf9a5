// Package dispatch distributes hashing work across a bounded worker pool.
//
// Results are stored in positional slots so output order always matches
// input order, no matter which worker finishes first. Slots are disjoint,
// so concurrent writes need no locking.
package dispatch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/hasher/internal/filehash"
	"github.com/vvka-141/hasher/pkg/hasher"
)

// Dispatcher runs at most workers concurrent file hashers.
type Dispatcher struct {
	hasher  *filehash.Hasher
	workers int
	logger  hasher.Logger
}

// New creates a dispatcher. Panics if workers < 1; callers validate the
// parallel count before any I/O.
func New(h *filehash.Hasher, workers int, logger hasher.Logger) *Dispatcher {
	if workers < 1 {
		panic("workers must be at least 1")
	}
	return &Dispatcher{hasher: h, workers: workers, logger: logger}
}

// Run hashes every input and returns one Result per input, in input order.
// Per-input failures are carried inside the Results; Run itself only
// observes ctx cancellation, in which case remaining inputs still get a
// Result carrying the cancellation error.
func (d *Dispatcher) Run(ctx context.Context, inputs []hasher.Input) []hasher.Result {
	results := make([]hasher.Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, in := range inputs {
		g.Go(func() error {
			d.logger.Verbose("hashing %s", in.Name)
			results[i] = d.hasher.HashFile(ctx, in)
			return nil
		})
	}

	// Workers never return errors; failures live in their result slot.
	_ = g.Wait()

	return results
}
