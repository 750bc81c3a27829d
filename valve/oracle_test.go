package valve

import (
	"context"
	"fmt"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/horizon/network"
)

// randomNetwork builds a connected network of n valves: a random spanning
// tree plus a few extra tunnels, all two-way, with rates in [0, 9].
func randomNetwork(t *testing.T, rng *rand.Rand, n int) *network.Network {
	t.Helper()
	valves := make([]network.Valve, n)
	for i := range valves {
		valves[i].Label = fmt.Sprintf("V%d", i)
		if i > 0 {
			valves[i].Rate = int64(rng.Intn(10))
		}
		if i == 1 && valves[i].Rate == 0 {
			valves[i].Rate = 1
		}
	}
	link := func(a, b int) {
		valves[a].Tunnels = append(valves[a].Tunnels, valves[b].Label)
		valves[b].Tunnels = append(valves[b].Tunnels, valves[a].Label)
	}
	for i := 1; i < n; i++ {
		link(i, rng.Intn(i))
	}
	for k := 0; k < n/2; k++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a != b {
			link(a, b)
		}
	}
	net, err := network.New(valves)
	require.NoError(t, err)

	return net
}

// bestAlone is an independent oracle: the best flow one actor can release
// from valve at, opening only valves whose bit is in allowed.
func bestAlone(net *network.Network, at, t, horizon int, open, allowed uint64) int64 {
	var best int64
	for b := 0; b < net.RelevantCount(); b++ {
		mask := uint64(1) << uint(b)
		if allowed&mask == 0 || open&mask != 0 {
			continue
		}
		v := net.RelevantValve(b)
		d := net.Distance(at, v)
		if d == network.Unreachable {
			continue
		}
		opened := t + d + 1
		if opened >= horizon {
			continue
		}
		gain := net.Rate(v)*int64(horizon-opened) + bestAlone(net, v, opened, horizon, open|mask, allowed)
		if gain > best {
			best = gain
		}
	}

	return best
}

// oracle splits the relevant valves between the actors every possible way.
func oracle(net *network.Network, start, horizon, actors int) int64 {
	full := uint64(1)<<uint(net.RelevantCount()) - 1
	if actors == 1 {
		return bestAlone(net, start, 0, horizon, 0, full)
	}
	var best int64
	for mine := uint64(0); mine <= full; mine++ {
		v := bestAlone(net, start, 0, horizon, 0, mine) + bestAlone(net, start, 0, horizon, 0, full^mine)
		if v > best {
			best = v
		}
	}

	return best
}

func TestSolve_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	for trial := 0; trial < 40; trial++ {
		n := 4 + rng.Intn(4)
		horizon := 5 + rng.Intn(8)
		actors := 1 + trial%2
		net := randomNetwork(t, rng, n)

		res, err := Solve(context.Background(), net, Config{Start: "V0", Horizon: horizon, Actors: actors})
		require.NoError(t, err)
		assert.Equal(t, oracle(net, 0, horizon, actors), res.Released,
			"trial %d: n=%d horizon=%d actors=%d", trial, n, horizon, actors)
	}
}

// exhaustive walks every state reachable through successors and returns
// the exact minimal remaining cost of each, keyed by the full state.
type exhaustive struct {
	p    *planner
	memo map[State]int64
}

func (e *exhaustive) minCost(t *testing.T, s State) int64 {
	if c, ok := e.memo[s]; ok {
		return c
	}
	if e.p.isGoal(s) {
		e.memo[s] = 0
		return 0
	}
	steps, err := e.p.successors(s)
	require.NoError(t, err)
	require.NotEmpty(t, steps, "non-terminal state without successors: %+v", s)

	best := int64(-1)
	for _, st := range steps {
		next := st.State
		// monotonic fields along every transition
		require.Greater(t, next.Elapsed, s.Elapsed)
		require.GreaterOrEqual(t, next.Released, s.Released)
		require.GreaterOrEqual(t, next.Rate, s.Rate)
		require.Equal(t, s.Open, next.Open&s.Open)
		// no double activation: the rate grows by exactly the newly opened valves
		var gained int64
		for b := 0; b < e.p.net.RelevantCount(); b++ {
			if (next.Open^s.Open)&(1<<uint(b)) != 0 {
				gained += e.p.net.Rate(e.p.net.RelevantValve(b))
			}
		}
		require.Equal(t, gained, next.Rate-s.Rate)
		require.LessOrEqual(t, bits.OnesCount64(next.Open^s.Open), e.p.actors)

		c := st.Cost + e.minCost(t, next)
		if best < 0 || c < best {
			best = c
		}
	}
	e.memo[s] = best

	return best
}

func TestHeuristic_Admissible(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for trial := 0; trial < 12; trial++ {
		net := randomNetwork(t, rng, 4+rng.Intn(2))
		p := &planner{net: net, horizon: 4 + rng.Intn(4), actors: 1 + trial%2}
		e := &exhaustive{p: p, memo: make(map[State]int64)}

		start := p.start(0)
		total := e.minCost(t, start)

		// minimal cost is the deficit of the optimal plan
		want := int64(p.horizon)*net.MaxRate() - oracle(net, 0, p.horizon, p.actors)
		assert.Equal(t, want, total, "trial %d", trial)

		for s, exact := range e.memo {
			require.LessOrEqual(t, p.heuristic(s), exact, "trial %d state %+v", trial, s)
		}
	}
}

func TestJointActions_Product(t *testing.T) {
	menus := [][]Action{
		{{Kind: Open, Target: 1}, {Kind: Wait}},
		{{Kind: Open, Target: 1}, {Kind: MoveTo, Target: 2}, {Kind: Wait}},
	}
	combos := jointActions(menus)
	assert.Len(t, combos, 6)

	kept := 0
	for _, c := range combos {
		if !conflicting(c) {
			kept++
		}
	}
	assert.Equal(t, 5, kept, "only open/open on the same valve is dropped")
}

func TestMenu_Filters(t *testing.T) {
	net := randomNetwork(t, rand.New(rand.NewSource(1)), 5)
	p := &planner{net: net, horizon: 10, actors: 1}
	s := p.start(0)
	// open every relevant valve but the first
	for b := 1; b < net.RelevantCount(); b++ {
		s.Open |= 1 << uint(b)
	}
	for _, act := range p.menu(s, 0, 10) {
		if act.Kind == Wait {
			continue
		}
		b, ok := net.Bit(act.Target)
		require.True(t, ok, "only relevant valves are targeted")
		assert.Zero(t, s.Open&(1<<uint(b)), "open valves are never targeted")
	}

	// a travelling actor can only keep going
	s.Actors[0] = Actor{At: 1, Eta: 2}
	assert.Equal(t, []Action{{Kind: Wait}}, p.menu(s, 0, 10))
}

func TestApply_RejectsDoubleOpen(t *testing.T) {
	net := randomNetwork(t, rand.New(rand.NewSource(3)), 4)
	p := &planner{net: net, horizon: 10, actors: 2}
	v := net.RelevantValve(0)
	s := p.start(v)
	_, err := p.apply(s, []Action{{Kind: Open, Target: v}, {Kind: Open, Target: v}})
	assert.ErrorIs(t, err, ErrInvariant)
}
