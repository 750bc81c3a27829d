package valve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/horizon/astar"
)

// MaxActors is the largest supported number of cooperating actors.
const MaxActors = 2

var (
	// ErrBadConfig indicates an invalid horizon, actor count or start valve.
	ErrBadConfig = errors.New("valve: invalid configuration")

	// ErrInvariant indicates that a transition would break a model invariant,
	// such as opening a valve twice. It signals a bug, not bad input.
	ErrInvariant = errors.New("valve: invariant violated")
)

// ActionKind tags the variant of an Action.
type ActionKind uint8

const (
	Wait ActionKind = iota
	MoveTo
	Open
)

// String returns the action name.
func (k ActionKind) String() string {
	switch k {
	case Wait:
		return "wait"
	case MoveTo:
		return "move"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("action(%d)", uint8(k))
	}
}

// Action is one actor's choice for a single tick.
// Target is a valve index and is ignored for Wait.
type Action struct {
	Kind   ActionKind
	Target int
}

// Actor is the position of one actor. When Eta > 0 the actor is travelling
// and At is its destination, Eta ticks away.
type Actor struct {
	At  int
	Eta int
}

// State is an immutable search vertex.
type State struct {
	Actors   [MaxActors]Actor
	Open     uint64 // bit b set once relevant valve b is open
	Elapsed  int    // ticks elapsed since the start
	Rate     int64  // flow released per tick by the open valves
	Released int64  // cumulative flow released so far
}

// key is State without Released, with actors in canonical order.
type key struct {
	actors  [MaxActors]Actor
	open    uint64
	elapsed int
	rate    int64
}

// Config selects the instance to solve.
type Config struct {
	// Start is the label of the valve every actor starts on.
	Start string

	// Horizon is the number of ticks available.
	Horizon int

	// Actors is the number of cooperating actors, 1 or 2.
	Actors int
}

// Result is the outcome of Solve.
type Result struct {
	// Released is the maximum cumulative flow over the horizon.
	Released int64

	// Final is the terminal state of one optimal plan.
	Final State

	// Plan holds every state from start to Final when the search was run
	// with astar.WithReturnPath, nil otherwise.
	Plan []State

	Stats astar.Stats
}
