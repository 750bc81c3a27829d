package bfs

import (
	"fmt"

	"github.com/katalvlaran/horizon/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker holds mutable traversal state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph,
// ErrOptionViolation, or the context error on cancellation.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	w.enqueue(startID, 0)

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop drains the queue, checking for cancellation once per vertex.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		nbrs, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, next)
			}
		}
	}

	return nil
}
