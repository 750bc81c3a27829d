package partition

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// Outcome pairs a sub-problem's ID with its result.
type Outcome[R any] struct {
	ID      int
	Value   R
	Elapsed time.Duration
}

// Run solves every item with fn, at most Workers at a time.
// The returned slice is indexed by ID.
func Run[T, R any](ctx context.Context, items []T, fn func(ctx context.Context, id int, item T) (R, error), opts ...Option) ([]Outcome[R], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if fn == nil {
		return nil, ErrNilFunc
	}

	out := make([]Outcome[R], len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	o.Logger.Debug("partition started", "items", len(items), "workers", o.Workers)
	for id, item := range items {
		if gctx.Err() != nil {
			break
		}
		id, item := id, item
		g.Go(func() error {
			began := time.Now()
			v, err := fn(gctx, id, item)
			if err != nil {
				o.Logger.Warn("sub-problem failed", "id", id, "err", err)
				return fmt.Errorf("partition: item %d: %w", id, err)
			}
			out[id] = Outcome[R]{ID: id, Value: v, Elapsed: time.Since(began)}
			o.Logger.Debug("sub-problem solved", "id", id, "elapsed", out[id].Elapsed)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("partition: %w", err)
	}

	return out, nil
}

// QualitySum returns Σ (ID+1)·value over outs.
func QualitySum[R any](outs []Outcome[R], value func(R) int64) int64 {
	var sum int64
	for _, oc := range outs {
		sum += int64(oc.ID+1) * value(oc.Value)
	}

	return sum
}

// TopProduct multiplies the n largest values.
func TopProduct[R any](outs []Outcome[R], n int, value func(R) int64) (int64, error) {
	if n < 1 || n > len(outs) {
		return 0, fmt.Errorf("%w: want %d of %d", ErrTooFew, n, len(outs))
	}
	vals := make([]int64, len(outs))
	for i, oc := range outs {
		vals[i] = value(oc.Value)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] > vals[j] })

	product := int64(1)
	for _, v := range vals[:n] {
		product *= v
	}

	return product, nil
}

// Max returns the outcome with the largest value; ties keep the lowest ID.
// ok is false when outs is empty.
func Max[R any](outs []Outcome[R], value func(R) int64) (best Outcome[R], ok bool) {
	for i, oc := range outs {
		if i == 0 || value(oc.Value) > value(best.Value) {
			best = oc
		}
	}

	return best, len(outs) > 0
}
