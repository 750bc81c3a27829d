package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// Directed reports whether new edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph accepts non-zero weights.
func (g *Graph) Weighted() bool { return g.weighted }

// AddVertex inserts a vertex. Adding an existing ID is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	return nil
}

// HasVertex reports whether the vertex exists. The empty ID never does.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge connects from and to, creating missing endpoints, and returns the
// new edge ID. Undirected edges are mirrored in the adjacency.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{ID: g.newEdgeID(), From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[e.ID] = e
	g.link(from, to, e.ID)
	if !e.Directed && from != to {
		g.link(to, from, e.ID)
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge leads from → to.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// NeighborIDs returns the unique vertices reachable from id over one edge,
// sorted ascending. Directed edges are followed only forwards.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	ids := make([]string, 0, len(g.adjacency[id]))
	for to, set := range g.adjacency[id] {
		if len(set) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges; a mirrored undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// link records eid under adjacency[from][to]. Caller holds muEdgeAdj.
func (g *Graph) link(from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}

// newEdgeID returns "e" followed by a monotonic counter.
func (g *Graph) newEdgeID() string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, 'e')
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
