package factory

import (
	"context"
	"fmt"

	"github.com/katalvlaran/horizon/astar"
	"github.com/katalvlaran/horizon/partition"
)

// MaxValue returns the largest stock of Value that bp can hold after
// cfg.Horizon ticks.
//
// opts are passed to astar.Search after a WithContext(ctx) option.
// Errors: ErrMalformedInput, ErrBadConfig, astar errors (ErrNoSolution when
// cfg.Target cannot be met), ErrInvariant.
func MaxValue(ctx context.Context, bp Blueprint, cfg Config, opts ...astar.Option) (*Result, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	if cfg.Horizon < 0 {
		return nil, fmt.Errorf("%w: horizon %d is negative", ErrBadConfig, cfg.Horizon)
	}
	if cfg.Target < 0 {
		return nil, fmt.Errorf("%w: target %d is negative", ErrBadConfig, cfg.Target)
	}

	p := newPlanner(bp, cfg)
	problem := astar.Problem[State, key]{
		Start:      p.start(),
		Key:        p.key,
		Successors: p.successors,
		Heuristic:  p.heuristic,
		IsGoal:     p.isGoal,
	}

	res, err := astar.Search(problem, append([]astar.Option{astar.WithContext(ctx)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("factory: blueprint %d: %w", bp.ID, err)
	}

	return &Result{
		Blueprint: bp.ID,
		Value:     res.Goal.Stock.Get(Value),
		Final:     res.Goal,
		Plan:      res.Path,
		Stats:     res.Stats,
	}, nil
}

// SolveAll runs MaxValue for every blueprint on a partition worker pool.
// Outcome IDs are positions in bps.
func SolveAll(ctx context.Context, bps []Blueprint, cfg Config, popts []partition.Option, sopts ...astar.Option) ([]partition.Outcome[*Result], error) {
	for _, bp := range bps {
		if err := bp.Validate(); err != nil {
			return nil, err
		}
	}

	return partition.Run(ctx, bps, func(ctx context.Context, _ int, bp Blueprint) (*Result, error) {
		return MaxValue(ctx, bp, cfg, sopts...)
	}, popts...)
}

func resultValue(r *Result) int64 { return r.Value }

// QualityLevel sums (position+1)·Value over outcomes.
func QualityLevel(outs []partition.Outcome[*Result]) int64 {
	return partition.QualitySum(outs, resultValue)
}

// TopProduct multiplies the n largest Values.
func TopProduct(outs []partition.Outcome[*Result], n int) (int64, error) {
	return partition.TopProduct(outs, n, resultValue)
}
