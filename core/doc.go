// Package core provides a small thread-safe in-memory Graph keyed by string
// vertex IDs.
//
// Options (GraphOption):
//
//   - WithDirected(bool): one-way edges; otherwise edges are mirrored.
//   - WithWeighted():     permit non-zero weights, else AddEdge → ErrBadWeight.
//   - WithMultiEdges():   permit parallel edges, else ErrMultiEdgeNotAllowed.
//   - WithLoops():        permit self-loops, else ErrLoopNotAllowed.
//
// Determinism
//
//	Vertices and NeighborIDs return sorted IDs, so traversals built on
//	them (see package bfs) visit vertices in a reproducible order.
//
// Concurrency
//
//	The vertex catalog and the edge/adjacency maps have separate RWMutexes.
//	Readers take muVert before muEdgeAdj, the same order as writers.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
