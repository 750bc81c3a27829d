package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horizon/bfs"
	"github.com/katalvlaran/horizon/core"
)

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	gw := core.NewGraph(core.WithWeighted())
	require.NoError(t, gw.AddVertex("A"))
	_, err = bfs.BFS(gw, "A")
	assert.ErrorIs(t, err, bfs.ErrWeightedGraph)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
}

func TestBFS_DirectedUnreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "A", 0)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1}, res.Depth)
	_, reached := res.Depth["C"]
	assert.False(t, reached)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("v0", "v1", 0)
	_, _ = g.AddEdge("v1", "v2", 0)
	_, _ = g.AddEdge("v2", "v3", 0)

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
