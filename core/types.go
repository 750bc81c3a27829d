package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string
}

// Edge represents a connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge; always 0 in unweighted graphs.
	Weight int64

	// Directed reports whether the edge is one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an in-memory graph guarded by two locks: muVert for the vertex
// catalog, muEdgeAdj for edges and adjacency. Lock order is muVert first.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[from][to][edgeID]
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default it is undirected, unweighted,
// and rejects loops and multi-edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
