package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrWeightedGraph is returned when BFS is run on a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS. An invalid Option is recorded and surfaced as
// ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds BFS parameters.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns a background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits exploration to depth d; d == 0 means no limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence.
//   - Depth: vertex ID → distance in edges from the start. Vertices absent
//     from the map were not reached.
type Result struct {
	Order []string
	Depth map[string]int
}
