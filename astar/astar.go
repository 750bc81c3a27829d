package astar

import (
	"container/heap"
	"fmt"
)

// cancelCheckMask spaces out context polls to one every 256 expansions.
const cancelCheckMask = 255

// Search runs best-first search over p and returns the first goal state
// popped from the open list together with its path cost.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. p.Key, p.Successors and p.IsGoal must be non-nil.
//  3. The heuristic must be non-negative for every evaluated state.
//  4. Every edge cost must be non-negative.
//
// Complexity: O(N log N) time and O(N) space for N generated states.
func Search[S any, K comparable](p Problem[S, K], opts ...Option) (*Result[S], error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the problem description.
	switch {
	case p.Key == nil:
		return nil, ErrNilKey
	case p.Successors == nil:
		return nil, ErrNilSuccessors
	case p.IsGoal == nil:
		return nil, ErrNilGoal
	}
	if p.Heuristic == nil {
		p.Heuristic = func(S) int64 { return 0 }
	}

	// 3) Seed the runner with the start state.
	r := &runner[S, K]{
		p:    p,
		opts: cfg,
		best: make(map[K]int64),
	}
	heap.Init(&r.open)
	if err := r.push(p.Start, 0, nil); err != nil {
		return nil, err
	}

	// 4) Main loop.
	return r.process()
}

// runner holds the mutable state of a single Search execution.
type runner[S any, K comparable] struct {
	p     Problem[S, K]
	opts  Options
	open  frontier[S]
	best  map[K]int64 // key → cheapest g pushed so far
	seq   uint64      // insertion counter for deterministic tie-breaks
	stats Stats
}

// push records s with accumulated cost g if it improves the best-known cost
// for its key. parent is only retained when ReturnPath is set.
func (r *runner[S, K]) push(s S, g int64, parent *node[S]) error {
	k := r.p.Key(s)
	if old, seen := r.best[k]; seen {
		if g >= old {
			return nil
		}
		r.stats.Reopened++
	}

	h := r.p.Heuristic(s)
	if h < 0 {
		return fmt.Errorf("%w: h=%d", ErrNegativeHeuristic, h)
	}
	r.best[k] = g

	n := &node[S]{state: s, g: g, f: g + h, seq: r.seq}
	if parent != nil {
		n.depth = parent.depth + 1
		if r.opts.ReturnPath {
			n.parent = parent
		}
	}
	r.seq++
	heap.Push(&r.open, n)
	r.stats.Pushed++
	if r.open.Len() > r.stats.MaxFrontier {
		r.stats.MaxFrontier = r.open.Len()
	}

	return nil
}

// process pops states in non-decreasing f order until a goal is found,
// the open list empties, or the search is aborted.
func (r *runner[S, K]) process() (*Result[S], error) {
	ctx := r.opts.Ctx
	for r.open.Len() > 0 {
		// cancellation check, sparse to keep the hot loop cheap
		if r.stats.Expanded&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		n := heap.Pop(&r.open).(*node[S])

		// Skip entries superseded by a cheaper push for the same key.
		if n.g > r.best[r.p.Key(n.state)] {
			continue
		}

		if r.p.IsGoal(n.state) {
			return r.result(n), nil
		}

		if r.opts.MaxExpansions > 0 && r.stats.Expanded >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, r.stats.Expanded)
		}
		r.stats.Expanded++
		r.opts.OnExpand(Expansion{
			Expanded: r.stats.Expanded,
			Depth:    n.depth,
			G:        n.g,
			F:        n.f,
			Frontier: r.open.Len(),
		})

		steps, err := r.p.Successors(n.state)
		if err != nil {
			return nil, err
		}
		r.stats.Generated += len(steps)
		for _, st := range steps {
			if st.Cost < 0 {
				return nil, fmt.Errorf("%w: cost=%d", ErrNegativeCost, st.Cost)
			}
			if err = r.push(st.State, n.g+st.Cost, n); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("%w: open list exhausted after %d expansions", ErrNoSolution, r.stats.Expanded)
}

// result assembles the Result for goal node n, rebuilding the path if requested.
func (r *runner[S, K]) result(n *node[S]) *Result[S] {
	res := &Result[S]{
		Goal:  n.state,
		Cost:  n.g,
		Stats: r.stats,
	}
	if !r.opts.ReturnPath {
		return res
	}

	// walk parent links back to the start, then reverse
	path := make([]S, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.state)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	res.Path = path

	return res
}

// node is one open-list entry.
type node[S any] struct {
	state  S
	g, f   int64
	seq    uint64
	depth  int
	parent *node[S]
}

// frontier is a min-heap of *node ordered by f, then by insertion sequence.
type frontier[S any] []*node[S]

func (pq frontier[S]) Len() int { return len(pq) }

func (pq frontier[S]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier[S]) Push(x any) { *pq = append(*pq, x.(*node[S])) }

func (pq *frontier[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
