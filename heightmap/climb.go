package heightmap

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/horizon/astar"
)

// ShortestClimb returns the fewest steps from one cell to another.
// opts are passed to astar.Search after WithContext(ctx); an unreachable
// target yields astar.ErrNoSolution.
func ShortestClimb(ctx context.Context, m *Map, from, to Point, opts ...astar.Option) (*Route, error) {
	if m == nil {
		return nil, ErrEmptyGrid
	}
	if !m.InBounds(from) {
		return nil, fmt.Errorf("%w: %v", ErrNoStart, from)
	}
	if !m.InBounds(to) {
		return nil, fmt.Errorf("%w: %v", ErrNoEnd, to)
	}

	problem := astar.Problem[Point, Point]{
		Start: from,
		Key:   func(p Point) Point { return p },
		Successors: func(p Point) ([]astar.Step[Point], error) {
			next := m.Climbable(p)
			steps := make([]astar.Step[Point], len(next))
			for i, q := range next {
				steps[i] = astar.Step[Point]{State: q, Cost: 1}
			}

			return steps, nil
		},
		Heuristic: func(p Point) int64 { return euclid(p, to) },
		IsGoal:    func(p Point) bool { return p == to },
	}

	res, err := astar.Search(problem, append([]astar.Option{astar.WithContext(ctx)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("heightmap: climb %v→%v: %w", from, to, err)
	}

	return &Route{From: from, To: to, Steps: res.Cost, Path: res.Path, Stats: res.Stats}, nil
}

// FewestSteps returns the shortest climb to m.End from any lowest cell.
// Starts that cannot reach the end are skipped; if none can, the error
// wraps astar.ErrNoSolution.
func FewestSteps(ctx context.Context, m *Map, opts ...astar.Option) (*Route, error) {
	if m == nil {
		return nil, ErrEmptyGrid
	}
	var best *Route
	for _, from := range m.Lowest() {
		r, err := ShortestClimb(ctx, m, from, m.End, opts...)
		if errors.Is(err, astar.ErrNoSolution) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if best == nil || r.Steps < best.Steps {
			best = r
		}
	}
	if best == nil {
		return nil, fmt.Errorf("heightmap: no lowest cell reaches %v: %w", m.End, astar.ErrNoSolution)
	}

	return best, nil
}

// euclid is the straight-line distance rounded down.
func euclid(a, b Point) int64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)

	return int64(math.Sqrt(dx*dx + dy*dy))
}
