// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances and visit order.
//
// Because core.Graph.NeighborIDs is sorted, the visit order is
// reproducible. Directed edges are followed only forwards.
//
// Usage
//
//	res, err := bfs.BFS(g, "AA", bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph,
//	    // ErrOptionViolation, or ctx.Err()
//	}
//	d, reached := res.Depth["JJ"]
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
