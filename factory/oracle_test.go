package factory

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horizon/resource"
)

// randomBlueprint draws a small blueprint whose items feed each other.
func randomBlueprint(rng *rand.Rand, id int) Blueprint {
	ore := func(n int) int64 { return int64(1 + rng.Intn(n)) }
	items := []Item{
		{Name: "ore robot", Cost: resource.Vector{ore(3)}, Yield: resource.Of(resource.Ore, 1)},
		{Name: "clay robot", Cost: resource.Vector{ore(3)}, Yield: resource.Of(resource.Clay, 1)},
		{Name: "geode robot", Cost: resource.Vector{ore(3), int64(rng.Intn(4))}, Yield: resource.Of(resource.Geode, 1)},
	}
	if rng.Intn(2) == 0 {
		items = append(items, Item{
			Name:  "twin robot",
			Cost:  resource.Vector{ore(4) + 1, int64(rng.Intn(3))},
			Yield: resource.Vector{1, 0, 0, int64(1 + rng.Intn(2))},
		})
	}

	return Blueprint{ID: id, Items: items}
}

// exhaustive returns the most geodes reachable from s, trying every
// affordable item and waiting on every tick.
func exhaustive(items []Item, s State, horizon int) int64 {
	if s.Elapsed == horizon {
		return s.Stock.Get(Value)
	}
	next := State{Rate: s.Rate, Stock: s.Stock.Add(s.Rate), Elapsed: s.Elapsed + 1}
	best := exhaustive(items, next, horizon)
	for _, it := range items {
		paid, err := s.Stock.Sub(it.Cost)
		if err != nil {
			continue
		}
		built := State{Rate: s.Rate.Add(it.Yield), Stock: paid.Add(s.Rate), Elapsed: s.Elapsed + 1}
		best = max(best, exhaustive(items, built, horizon))
	}

	return best
}

func TestMaxValue_MatchesExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for trial := 0; trial < 25; trial++ {
		bp := randomBlueprint(rng, trial+1)
		horizon := 4 + rng.Intn(5)

		want := exhaustive(bp.Items, newPlanner(bp, Config{Horizon: horizon}).start(), horizon)
		res, err := MaxValue(context.Background(), bp, Config{Horizon: horizon})
		require.NoError(t, err, "trial %d", trial)
		assert.Equal(t, want, res.Value, "trial %d horizon %d items %+v", trial, horizon, bp.Items)
	}
}

func TestHeuristic_Admissible(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 15; trial++ {
		bp := randomBlueprint(rng, trial+1)
		horizon := 5 + rng.Intn(3)
		p := newPlanner(bp, Config{Horizon: horizon})

		// walk a random trajectory and check h against the exact remaining cost
		s := p.start()
		for s.Elapsed < horizon {
			remaining := horizon - s.Elapsed
			best := exhaustive(bp.Items, State{Rate: s.Rate, Stock: s.Stock}, remaining)
			// the deficit is paid on every remaining tick, minus geodes gained
			exact := int64(remaining)*(p.ceil) - (best - s.Stock.Get(Value))
			assert.LessOrEqual(t, p.heuristic(s), exact, "trial %d at %+v", trial, s)

			acts, _ := p.menu(s, remaining)
			next, err := p.apply(s, acts[rng.Intn(len(acts))])
			require.NoError(t, err)
			s = next
		}
		assert.Zero(t, p.heuristic(s))
	}
}

func TestMenu(t *testing.T) {
	bp := Blueprint{ID: 1, Items: []Item{
		{Name: "ore robot", Cost: resource.Vector{2}, Yield: resource.Of(resource.Ore, 1)},
		{Name: "geode robot", Cost: resource.Vector{3}, Yield: resource.Of(resource.Geode, 1)},
	}}
	p := newPlanner(bp, Config{Horizon: 20})

	// nothing affordable: only Wait
	acts, live := p.menu(State{Rate: resource.Vector{1}}, 20)
	assert.True(t, live)
	assert.Equal(t, []Action{{Kind: Wait}}, acts)

	// everything affordable: no Wait
	acts, _ = p.menu(State{Rate: resource.Vector{1}, Stock: resource.Vector{3}}, 20)
	assert.Equal(t, []Action{{Kind: Build, Item: 0}, {Kind: Build, Item: 1}}, acts)

	// ore production already covers the largest ore cost
	acts, _ = p.menu(State{Rate: resource.Vector{3}, Stock: resource.Vector{3}}, 20)
	assert.Equal(t, []Action{{Kind: Build, Item: 1}, {Kind: Wait}}, acts)

	// three ticks left: ore robot can no longer pay off
	acts, _ = p.menu(State{Rate: resource.Vector{1}, Stock: resource.Vector{3}}, 3)
	assert.Equal(t, []Action{{Kind: Build, Item: 1}, {Kind: Wait}}, acts)

	// last tick: nothing is useful
	_, live = p.menu(State{Rate: resource.Vector{1}, Stock: resource.Vector{3}}, 1)
	assert.False(t, live)
}

func TestApply_Underflow(t *testing.T) {
	p := newPlanner(StandardBlueprint(1, [6]int64{4, 2, 3, 14, 2, 7}), Config{Horizon: 24})
	_, err := p.apply(p.start(), Action{Kind: Build, Item: 3})
	assert.ErrorIs(t, err, ErrInvariant)
	assert.ErrorIs(t, err, resource.ErrUnderflow)

	_, err = p.apply(p.start(), Action{Kind: Build, Item: 9})
	assert.ErrorIs(t, err, ErrInvariant)
}

func TestKey_IgnoresValueStock(t *testing.T) {
	p := newPlanner(StandardBlueprint(1, [6]int64{4, 2, 3, 14, 2, 7}), Config{Horizon: 24})
	a := State{Rate: resource.Vector{1, 0, 0, 1}, Stock: resource.Vector{2, 0, 0, 5}, Elapsed: 9}
	b := a
	b.Stock[Value] = 7
	assert.Equal(t, p.key(a), p.key(b))
	b.Stock[resource.Ore]++
	assert.NotEqual(t, p.key(a), p.key(b))
}
