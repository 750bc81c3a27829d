package factory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horizon/astar"
	"github.com/katalvlaran/horizon/factory"
	"github.com/katalvlaran/horizon/partition"
	"github.com/katalvlaran/horizon/resource"
)

func sampleBlueprints() []factory.Blueprint {
	return []factory.Blueprint{
		factory.StandardBlueprint(1, [6]int64{4, 2, 3, 14, 2, 7}),
		factory.StandardBlueprint(2, [6]int64{2, 3, 3, 8, 3, 12}),
	}
}

// cheapGeode has one item: 2 ore buys +1 geode per tick.
func cheapGeode() factory.Blueprint {
	return factory.Blueprint{ID: 1, Items: []factory.Item{{
		Name:  "geode robot",
		Cost:  resource.Of(resource.Ore, 2),
		Yield: resource.Of(resource.Geode, 1),
	}}}
}

func TestStandardBlueprint(t *testing.T) {
	bp := factory.StandardBlueprint(7, [6]int64{4, 2, 3, 14, 2, 7})
	require.NoError(t, bp.Validate())
	assert.Equal(t, 7, bp.ID)
	require.Len(t, bp.Items, 4)
	assert.Equal(t, resource.Vector{3, 14, 0, 0}, bp.Items[2].Cost)
	assert.Equal(t, resource.Vector{2, 0, 7, 0}, bp.Items[3].Cost)
	assert.Equal(t, resource.Of(resource.Geode, 1), bp.Items[3].Yield)
	assert.Equal(t, "geode robot", bp.Items[3].Name)
}

func TestValidate(t *testing.T) {
	item := func(cost, yield resource.Vector) factory.Blueprint {
		return factory.Blueprint{ID: 3, Items: []factory.Item{{Name: "x", Cost: cost, Yield: yield}}}
	}
	one := resource.Of(resource.Ore, 1)

	cases := map[string]factory.Blueprint{
		"no items":      {ID: 3},
		"negative cost": item(resource.Vector{-1, 0, 0, 0}, one),
		"costs geode":   item(resource.Of(resource.Geode, 1), one),
		"zero yield":    item(one, resource.Vector{}),
		"negative":      item(one, resource.Vector{1, -1, 0, 0}),
		"no name":       {ID: 3, Items: []factory.Item{{Cost: one, Yield: one}}},
	}
	for name, bp := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, bp.Validate(), factory.ErrMalformedInput)
			_, err := factory.MaxValue(context.Background(), bp, factory.Config{Horizon: 5})
			assert.ErrorIs(t, err, factory.ErrMalformedInput)
		})
	}
}

func TestMaxValue_BadConfig(t *testing.T) {
	_, err := factory.MaxValue(context.Background(), cheapGeode(), factory.Config{Horizon: -1})
	assert.ErrorIs(t, err, factory.ErrBadConfig)
	_, err = factory.MaxValue(context.Background(), cheapGeode(), factory.Config{Horizon: 3, Target: -2})
	assert.ErrorIs(t, err, factory.ErrBadConfig)
}

func TestMaxValue_Golden(t *testing.T) {
	res, err := factory.MaxValue(context.Background(), cheapGeode(), factory.Config{Horizon: 6})
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Value)
	assert.Equal(t, 6, res.Final.Elapsed)
	assert.Equal(t, int64(2), res.Final.Rate.Get(resource.Geode))
}

func TestMaxValue_Target(t *testing.T) {
	res, err := factory.MaxValue(context.Background(), cheapGeode(), factory.Config{Horizon: 6, Target: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Value)

	_, err = factory.MaxValue(context.Background(), cheapGeode(), factory.Config{Horizon: 6, Target: 5})
	assert.ErrorIs(t, err, astar.ErrNoSolution)

	_, err = factory.MaxValue(context.Background(), cheapGeode(), factory.Config{Horizon: 0, Target: 1})
	assert.ErrorIs(t, err, astar.ErrNoSolution)
}

func TestMaxValue_ZeroHorizon(t *testing.T) {
	res, err := factory.MaxValue(context.Background(), sampleBlueprints()[0], factory.Config{})
	require.NoError(t, err)
	assert.Zero(t, res.Value)
	assert.Equal(t, resource.Of(resource.Ore, 1), res.Final.Rate)
}

func TestMaxValue_NoValueItem(t *testing.T) {
	bp := factory.Blueprint{ID: 1, Items: []factory.Item{{
		Name: "ore robot", Cost: resource.Of(resource.Ore, 1), Yield: resource.Of(resource.Ore, 1),
	}}}
	res, err := factory.MaxValue(context.Background(), bp, factory.Config{Horizon: 10})
	require.NoError(t, err)
	assert.Zero(t, res.Value)
}

func TestMaxValue_Plan(t *testing.T) {
	res, err := factory.MaxValue(context.Background(), cheapGeode(), factory.Config{Horizon: 6}, astar.WithReturnPath())
	require.NoError(t, err)
	require.NotEmpty(t, res.Plan)
	assert.Equal(t, 0, res.Plan[0].Elapsed)
	assert.Equal(t, res.Final, res.Plan[len(res.Plan)-1])
	for i := 1; i < len(res.Plan); i++ {
		prev, cur := res.Plan[i-1], res.Plan[i]
		assert.Greater(t, cur.Elapsed, prev.Elapsed)
		assert.LessOrEqual(t, cur.Elapsed, 6)
		assert.False(t, cur.Stock.HasNegative())
		for k := range cur.Rate {
			assert.GreaterOrEqual(t, cur.Rate[k], prev.Rate[k])
		}
		assert.GreaterOrEqual(t, cur.Stock.Get(resource.Geode), prev.Stock.Get(resource.Geode))
	}
}

func TestMaxValue_Sample24(t *testing.T) {
	want := []int64{9, 12}
	for i, bp := range sampleBlueprints() {
		res, err := factory.MaxValue(context.Background(), bp, factory.Config{Horizon: 24})
		require.NoError(t, err)
		assert.Equal(t, want[i], res.Value, "blueprint %d", bp.ID)
		assert.Equal(t, bp.ID, res.Blueprint)
	}
}

func TestMaxValue_Deterministic(t *testing.T) {
	bp := sampleBlueprints()[1]
	a, err := factory.MaxValue(context.Background(), bp, factory.Config{Horizon: 20}, astar.WithReturnPath())
	require.NoError(t, err)
	b, err := factory.MaxValue(context.Background(), bp, factory.Config{Horizon: 20}, astar.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSolveAll_Quality(t *testing.T) {
	outs, err := factory.SolveAll(context.Background(), sampleBlueprints(), factory.Config{Horizon: 24},
		[]partition.Option{partition.WithWorkers(2)})
	require.NoError(t, err)
	require.Len(t, outs, 2)
	assert.Equal(t, int64(33), factory.QualityLevel(outs))
}

func TestSolveAll_Top32(t *testing.T) {
	if testing.Short() {
		t.Skip("32-tick search is slow")
	}
	outs, err := factory.SolveAll(context.Background(), factory.FirstN(sampleBlueprints(), 3), factory.Config{Horizon: 32}, nil)
	require.NoError(t, err)
	require.Len(t, outs, 2)
	assert.Equal(t, int64(56), outs[0].Value.Value)
	assert.Equal(t, int64(62), outs[1].Value.Value)

	p, err := factory.TopProduct(outs, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(56*62), p)
}

func TestSolveAll_Errors(t *testing.T) {
	bad := append(sampleBlueprints(), factory.Blueprint{ID: 9})
	_, err := factory.SolveAll(context.Background(), bad, factory.Config{Horizon: 24}, nil)
	assert.ErrorIs(t, err, factory.ErrMalformedInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = factory.SolveAll(ctx, sampleBlueprints(), factory.Config{Horizon: 24}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaxValue_ExpansionLimit(t *testing.T) {
	_, err := factory.MaxValue(context.Background(), sampleBlueprints()[0], factory.Config{Horizon: 24},
		astar.WithMaxExpansions(10))
	assert.ErrorIs(t, err, astar.ErrExpansionLimit)
}

func TestFirstN(t *testing.T) {
	bps := sampleBlueprints()
	assert.Len(t, factory.FirstN(bps, 1), 1)
	assert.Len(t, factory.FirstN(bps, 3), 2)
	assert.Len(t, factory.FirstN(bps, 0), 2)
	assert.Equal(t, 1, factory.FirstN(bps, 1)[0].ID)
}
