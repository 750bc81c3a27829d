package valve

import (
	"fmt"

	"github.com/katalvlaran/horizon/astar"
	"github.com/katalvlaran/horizon/network"
)

// planner closes over a network and a configuration and provides the
// successor, heuristic, key and goal functions of the search.
type planner struct {
	net     *network.Network
	horizon int
	actors  int
}

// start returns the initial state with every actor idle on valve at.
func (p *planner) start(at int) State {
	var s State
	for a := 0; a < p.actors; a++ {
		s.Actors[a] = Actor{At: at}
	}

	return s
}

func (p *planner) isGoal(s State) bool { return s.Elapsed == p.horizon }

// key drops Released and sorts the actors, which are interchangeable.
func (p *planner) key(s State) key {
	k := key{actors: s.Actors, open: s.Open, elapsed: s.Elapsed, rate: s.Rate}
	if p.actors == 2 {
		a, b := k.actors[0], k.actors[1]
		if b.At < a.At || (b.At == a.At && b.Eta < a.Eta) {
			k.actors[0], k.actors[1] = b, a
		}
	}

	return k
}

// allOpen reports whether every relevant valve is open in s.
func (p *planner) allOpen(s State) bool {
	r := p.net.RelevantCount()
	if r == network.MaxRelevant {
		return s.Open == ^uint64(0)
	}

	return s.Open == (uint64(1)<<uint(r))-1
}

// menu lists the legal actions of actor a in s with remaining ticks left.
// It never proposes opening an open valve or travelling somewhere that
// cannot be reached and opened while at least one tick remains to profit.
func (p *planner) menu(s State, a, remaining int) []Action {
	ac := s.Actors[a]
	if ac.Eta > 0 {
		return []Action{{Kind: Wait}}
	}

	acts := make([]Action, 0, p.net.RelevantCount()+2)
	if b, ok := p.net.Bit(ac.At); ok && s.Open&(1<<uint(b)) == 0 && remaining >= 2 {
		acts = append(acts, Action{Kind: Open, Target: ac.At})
	}
	for b := 0; b < p.net.RelevantCount(); b++ {
		if s.Open&(1<<uint(b)) != 0 {
			continue
		}
		v := p.net.RelevantValve(b)
		if v == ac.At {
			continue
		}
		d := p.net.Distance(ac.At, v)
		if d == network.Unreachable || d+1 >= remaining {
			continue
		}
		acts = append(acts, Action{Kind: MoveTo, Target: v})
	}

	return append(acts, Action{Kind: Wait})
}

// successors advances s by one tick for every admissible joint action, or
// fast-forwards to the horizon once nothing can change the rate any more.
func (p *planner) successors(s State) ([]astar.Step[State], error) {
	if s.Elapsed >= p.horizon {
		return nil, nil
	}
	remaining := p.horizon - s.Elapsed
	deficit := p.net.MaxRate() - s.Rate

	if p.allOpen(s) {
		return []astar.Step[State]{{State: p.fastForward(s), Cost: int64(remaining) * deficit}}, nil
	}

	menus := make([][]Action, p.actors)
	settled := true
	for a := 0; a < p.actors; a++ {
		menus[a] = p.menu(s, a, remaining)
		if s.Actors[a].Eta > 0 || len(menus[a]) > 1 {
			settled = false
		}
	}
	if settled {
		return []astar.Step[State]{{State: p.fastForward(s), Cost: int64(remaining) * deficit}}, nil
	}

	combos := jointActions(menus)
	steps := make([]astar.Step[State], 0, len(combos))
	for _, combo := range combos {
		if conflicting(combo) {
			continue
		}
		next, err := p.apply(s, combo)
		if err != nil {
			return nil, err
		}
		steps = append(steps, astar.Step[State]{State: next, Cost: deficit})
	}

	return steps, nil
}

// apply performs one tick: release flow at the current rate, then let each
// actor act.
func (p *planner) apply(s State, combo []Action) (State, error) {
	next := s
	next.Elapsed++
	next.Released += s.Rate

	for a, act := range combo {
		ac := &next.Actors[a]
		switch act.Kind {
		case Wait:
			if ac.Eta > 0 {
				ac.Eta--
			}
		case MoveTo:
			d := p.net.Distance(ac.At, act.Target)
			if ac.Eta > 0 || d < 1 {
				return State{}, fmt.Errorf("%w: actor %d cannot move %s→%s",
					ErrInvariant, a, p.net.Label(ac.At), p.net.Label(act.Target))
			}
			ac.At, ac.Eta = act.Target, d-1
		case Open:
			b, ok := p.net.Bit(act.Target)
			if !ok || ac.Eta > 0 || ac.At != act.Target {
				return State{}, fmt.Errorf("%w: actor %d cannot open %s", ErrInvariant, a, p.net.Label(act.Target))
			}
			mask := uint64(1) << uint(b)
			if next.Open&mask != 0 {
				return State{}, fmt.Errorf("%w: valve %s opened twice", ErrInvariant, p.net.Label(act.Target))
			}
			next.Open |= mask
			next.Rate += p.net.Rate(act.Target)
		default:
			return State{}, fmt.Errorf("%w: unknown action %v", ErrInvariant, act.Kind)
		}
	}

	return next, nil
}

// fastForward credits every remaining tick at the current rate.
func (p *planner) fastForward(s State) State {
	next := s
	next.Released += int64(p.horizon-s.Elapsed) * s.Rate
	next.Elapsed = p.horizon

	return next
}

// heuristic bounds the remaining deficit from below. On the i-th remaining
// tick at most actors*(i-1) further valves can have been opened, so the rate
// in force is at most Rate plus the largest that many closed rates.
func (p *planner) heuristic(s State) int64 {
	remaining := p.horizon - s.Elapsed
	if remaining <= 0 {
		return 0
	}
	closed := p.net.RatesDescending(s.Open)
	deficit := p.net.MaxRate() - s.Rate

	var h, unlocked int64
	opened := 0
	for i := 1; i <= remaining; i++ {
		gap := deficit - unlocked
		if gap <= 0 {
			break
		}
		h += gap
		for j := 0; j < p.actors && opened < len(closed); j++ {
			unlocked += closed[opened]
			opened++
		}
	}

	return h
}

// jointActions returns the cartesian product of the per-actor menus.
func jointActions(menus [][]Action) [][]Action {
	total := 1
	for _, m := range menus {
		total *= len(m)
	}
	out := make([][]Action, 0, total)
	idx := make([]int, len(menus))
	for {
		combo := make([]Action, len(menus))
		for a, m := range menus {
			combo[a] = m[idx[a]]
		}
		out = append(out, combo)

		// odometer increment, last actor fastest
		a := len(menus) - 1
		for ; a >= 0; a-- {
			idx[a]++
			if idx[a] < len(menus[a]) {
				break
			}
			idx[a] = 0
		}
		if a < 0 {
			return out
		}
	}
}

// conflicting reports whether two actors open the same valve.
func conflicting(combo []Action) bool {
	for i := 0; i < len(combo); i++ {
		if combo[i].Kind != Open {
			continue
		}
		for j := i + 1; j < len(combo); j++ {
			if combo[j].Kind == Open && combo[j].Target == combo[i].Target {
				return true
			}
		}
	}

	return false
}
