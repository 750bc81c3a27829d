package factory

import (
	"fmt"

	"github.com/katalvlaran/horizon/astar"
	"github.com/katalvlaran/horizon/resource"
)

// planner closes over one blueprint and the search configuration.
type planner struct {
	items   []Item
	horizon int
	target  int64

	maxSpend resource.Vector // largest per-item cost of each resource
	maxYield int64           // largest Value yield of any item
	ceil     int64           // Value rate no plan can exceed
}

func newPlanner(bp Blueprint, cfg Config) *planner {
	p := &planner{items: bp.Items, horizon: cfg.Horizon, target: cfg.Target}
	for _, it := range bp.Items {
		p.maxSpend = p.maxSpend.Max(it.Cost)
		p.maxYield = max(p.maxYield, it.Yield.Get(Value))
	}
	p.ceil = p.start().Rate.Get(Value) + int64(cfg.Horizon)*p.maxYield

	return p
}

// start has a single ore-collecting robot and nothing in stock.
func (p *planner) start() State {
	return State{Rate: resource.Of(resource.Ore, 1)}
}

func (p *planner) isGoal(s State) bool {
	return s.Elapsed == p.horizon && s.Stock.Get(Value) >= p.target
}

// key drops the accrued Value: it never feeds back into the dynamics.
func (p *planner) key(s State) key {
	k := key{rate: s.Rate, stock: s.Stock, elapsed: s.Elapsed}
	k.stock[Value] = 0

	return k
}

// useful reports whether building it with remaining ticks left can still
// raise the final Value, ignoring affordability.
func (p *planner) useful(s State, it Item, remaining int) bool {
	if it.Yield.Get(Value) > 0 && remaining >= 2 {
		return true
	}
	if remaining < 4 {
		return false
	}
	for k := range it.Yield {
		if resource.Kind(k) != Value && it.Yield[k] > 0 && s.Rate[k] < p.maxSpend[k] {
			return true
		}
	}

	return false
}

// menu lists the actions worth trying in s. The second result is false when
// no item can be useful any more, whatever the stock.
func (p *planner) menu(s State, remaining int) ([]Action, bool) {
	acts := make([]Action, 0, len(p.items)+1)
	live := false
	for i, it := range p.items {
		if !p.useful(s, it, remaining) {
			continue
		}
		live = true
		if s.Stock.SufficientFor(it.Cost) {
			acts = append(acts, Action{Kind: Build, Item: i})
		}
	}
	if len(acts) < len(p.items) {
		acts = append(acts, Action{Kind: Wait})
	}

	return acts, live
}

func (p *planner) successors(s State) ([]astar.Step[State], error) {
	if s.Elapsed >= p.horizon {
		return nil, nil
	}
	remaining := p.horizon - s.Elapsed
	deficit := p.ceil - s.Rate.Get(Value)

	acts, live := p.menu(s, remaining)
	if !live {
		return []astar.Step[State]{{State: p.fastForward(s), Cost: int64(remaining) * deficit}}, nil
	}

	steps := make([]astar.Step[State], 0, len(acts))
	for _, act := range acts {
		next, err := p.apply(s, act)
		if err != nil {
			return nil, err
		}
		steps = append(steps, astar.Step[State]{State: next, Cost: deficit})
	}

	return steps, nil
}

// apply performs one tick: pay, collect at the old rate, then commission.
func (p *planner) apply(s State, act Action) (State, error) {
	next := s
	next.Elapsed++

	switch act.Kind {
	case Wait:
		next.Stock = s.Stock.Add(s.Rate)
	case Build:
		if act.Item < 0 || act.Item >= len(p.items) {
			return State{}, fmt.Errorf("%w: unknown item %d", ErrInvariant, act.Item)
		}
		it := p.items[act.Item]
		paid, err := s.Stock.Sub(it.Cost)
		if err != nil {
			return State{}, fmt.Errorf("%w: building %s: %w", ErrInvariant, it.Name, err)
		}
		next.Stock = paid.Add(s.Rate)
		next.Rate = s.Rate.Add(it.Yield)
	default:
		return State{}, fmt.Errorf("%w: unknown action %d", ErrInvariant, act.Kind)
	}

	return next, nil
}

// fastForward collects at the current rate until the horizon.
func (p *planner) fastForward(s State) State {
	next := s
	next.Stock = s.Stock.Add(s.Rate.Scale(int64(p.horizon - s.Elapsed)))
	next.Elapsed = p.horizon

	return next
}

// heuristic returns the larger of two lower bounds on the remaining cost.
//
// The first lets the Value rate grow by maxYield every tick. The second
// replays the remaining ticks building every affordable item at once for
// free; its stock and rate dominate any real plan's, so its Value rate does
// too.
func (p *planner) heuristic(s State) int64 {
	remaining := p.horizon - s.Elapsed
	rate0 := s.Rate.Get(Value)
	stock, rate := s.Stock, s.Rate

	var simple, relaxed int64
	for i := 0; i < remaining; i++ {
		if gap := p.ceil - rate0 - int64(i)*p.maxYield; gap > 0 {
			simple += gap
		}
		if gap := p.ceil - rate.Get(Value); gap > 0 {
			relaxed += gap
		}
		var gained resource.Vector
		for _, it := range p.items {
			if stock.SufficientFor(it.Cost) {
				gained = gained.Add(it.Yield)
			}
		}
		stock = stock.Add(rate)
		rate = rate.Add(gained)
	}

	return max(simple, relaxed)
}
