package valve

import (
	"context"
	"fmt"

	"github.com/katalvlaran/horizon/astar"
	"github.com/katalvlaran/horizon/network"
)

// Solve returns the maximum flow released from net within cfg.Horizon ticks.
//
// ctx is checked cooperatively by the search loop; opts are passed to
// astar.Search after the context, so callers may add hooks, an expansion
// limit or path reconstruction.
//
// Errors: ErrBadConfig for an invalid Config, astar errors unchanged,
// ErrInvariant if a transition breaks the model.
func Solve(ctx context.Context, net *network.Network, cfg Config, opts ...astar.Option) (*Result, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: nil network", ErrBadConfig)
	}
	if cfg.Horizon < 0 {
		return nil, fmt.Errorf("%w: horizon %d is negative", ErrBadConfig, cfg.Horizon)
	}
	if cfg.Actors < 1 || cfg.Actors > MaxActors {
		return nil, fmt.Errorf("%w: actors must be between 1 and %d, got %d", ErrBadConfig, MaxActors, cfg.Actors)
	}
	at, ok := net.Index(cfg.Start)
	if !ok {
		return nil, fmt.Errorf("%w: start %w: %q", ErrBadConfig, network.ErrUnknownValve, cfg.Start)
	}

	p := &planner{net: net, horizon: cfg.Horizon, actors: cfg.Actors}
	problem := astar.Problem[State, key]{
		Start:      p.start(at),
		Key:        p.key,
		Successors: p.successors,
		Heuristic:  p.heuristic,
		IsGoal:     p.isGoal,
	}

	res, err := astar.Search(problem, append([]astar.Option{astar.WithContext(ctx)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("valve: %w", err)
	}

	return &Result{
		Released: res.Goal.Released,
		Final:    res.Goal,
		Plan:     res.Path,
		Stats:    res.Stats,
	}, nil
}
