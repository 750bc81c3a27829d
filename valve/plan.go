package valve

import (
	"fmt"

	"github.com/katalvlaran/horizon/network"
)

// Event is one notable change between two consecutive plan states.
type Event struct {
	Tick   int    // tick at whose end the change is visible, 1-based
	Actor  int    // actor index, 0-based
	Kind   ActionKind
	Valve  string // target valve label
	Rate   int64  // total rate after the tick
	Amount int64  // flow released during the tick(s)
}

// String renders e as a single log-friendly line.
func (e Event) String() string {
	return fmt.Sprintf("tick %d: actor %d %s %s (rate %d)", e.Tick, e.Actor+1, e.Kind, e.Valve, e.Rate)
}

// Events rebuilds the decisions behind a plan returned with
// astar.WithReturnPath. Travel is reported once, on the tick it starts;
// fast-forward steps produce no events.
func Events(net *network.Network, plan []State) []Event {
	var out []Event
	for i := 1; i < len(plan); i++ {
		prev, cur := plan[i-1], plan[i]
		reported := uint64(0)
		for a := 0; a < MaxActors; a++ {
			before, after := prev.Actors[a], cur.Actors[a]
			ev := Event{Tick: cur.Elapsed, Actor: a, Rate: cur.Rate, Amount: cur.Released - prev.Released}
			switch {
			case after.At != before.At:
				ev.Kind, ev.Valve = MoveTo, net.Label(after.At)
			case after.Eta == 0 && before.Eta == 0 && openedAt(net, prev, cur, after.At):
				mask := uint64(1) << uint(mustBit(net, after.At))
				if reported&mask != 0 {
					continue
				}
				reported |= mask
				ev.Kind, ev.Valve = Open, net.Label(after.At)
			default:
				continue
			}
			out = append(out, ev)
		}
	}

	return out
}

// openedAt reports whether the valve at index v went from closed to open.
func openedAt(net *network.Network, prev, cur State, v int) bool {
	b, ok := net.Bit(v)
	if !ok {
		return false
	}
	mask := uint64(1) << uint(b)

	return prev.Open&mask == 0 && cur.Open&mask != 0
}

func mustBit(net *network.Network, v int) int {
	b, _ := net.Bit(v)

	return b
}
