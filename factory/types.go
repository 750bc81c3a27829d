package factory

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/horizon/astar"
	"github.com/katalvlaran/horizon/resource"
)

// Value is the resource whose final stock is maximised.
const Value = resource.Geode

var (
	// ErrMalformedInput indicates a blueprint that cannot be planned.
	ErrMalformedInput = errors.New("factory: malformed input")

	// ErrBadConfig indicates an invalid horizon or target.
	ErrBadConfig = errors.New("factory: invalid configuration")

	// ErrInvariant indicates that a transition broke a model invariant,
	// such as paying for an item that was not affordable.
	ErrInvariant = errors.New("factory: invariant violated")
)

// Item is one buildable thing on a blueprint.
type Item struct {
	Name  string
	Cost  resource.Vector
	Yield resource.Vector
}

// Blueprint is an independent sub-problem: a fixed menu of items.
type Blueprint struct {
	ID    int
	Items []Item
}

// Validate checks that every item has a name, a non-negative cost that does
// not consume the value resource, and a non-zero, non-negative yield.
func (bp Blueprint) Validate() error {
	if len(bp.Items) == 0 {
		return fmt.Errorf("%w: blueprint %d has no items", ErrMalformedInput, bp.ID)
	}
	for i, it := range bp.Items {
		switch {
		case it.Name == "":
			return fmt.Errorf("%w: blueprint %d item #%d has no name", ErrMalformedInput, bp.ID, i)
		case it.Cost.HasNegative():
			return fmt.Errorf("%w: blueprint %d item %q has a negative cost", ErrMalformedInput, bp.ID, it.Name)
		case it.Cost.Get(Value) != 0:
			return fmt.Errorf("%w: blueprint %d item %q costs %s", ErrMalformedInput, bp.ID, it.Name, Value)
		case it.Yield.HasNegative() || it.Yield.IsZero():
			return fmt.Errorf("%w: blueprint %d item %q yields nothing", ErrMalformedInput, bp.ID, it.Name)
		}
	}

	return nil
}

// StandardBlueprint builds the four-robot blueprint from its six costs:
// ore robot (ore), clay robot (ore), obsidian robot (ore, clay),
// geode robot (ore, obsidian).
func StandardBlueprint(id int, c [6]int64) Blueprint {
	robot := func(name string, cost resource.Vector, makes resource.Kind) Item {
		return Item{Name: name, Cost: cost, Yield: resource.Of(makes, 1)}
	}

	return Blueprint{
		ID: id,
		Items: []Item{
			robot("ore robot", resource.Vector{c[0], 0, 0, 0}, resource.Ore),
			robot("clay robot", resource.Vector{c[1], 0, 0, 0}, resource.Clay),
			robot("obsidian robot", resource.Vector{c[2], c[3], 0, 0}, resource.Obsidian),
			robot("geode robot", resource.Vector{c[4], 0, c[5], 0}, resource.Geode),
		},
	}
}

// FirstN returns at most the first n blueprints; n <= 0 keeps all of them.
func FirstN(bps []Blueprint, n int) []Blueprint {
	if n <= 0 || n >= len(bps) {
		return bps
	}

	return bps[:n]
}

// ActionKind tags the variant of an Action.
type ActionKind uint8

const (
	Wait ActionKind = iota
	Build
)

// Action is the factory's choice for one tick. Item indexes Blueprint.Items
// and is ignored for Wait.
type Action struct {
	Kind ActionKind
	Item int
}

// State is an immutable search vertex.
type State struct {
	Rate    resource.Vector // production per tick
	Stock   resource.Vector // resources on hand
	Elapsed int
}

// key is State without the accrued value.
type key struct {
	rate    resource.Vector
	stock   resource.Vector
	elapsed int
}

// Config selects the horizon and an optional minimum value.
type Config struct {
	// Horizon is the number of ticks available.
	Horizon int

	// Target, if > 0, requires at least Target units of Value at the
	// horizon; when unreachable the search fails with astar.ErrNoSolution.
	Target int64
}

// Result is the outcome of MaxValue for one blueprint.
type Result struct {
	Blueprint int
	Value     int64
	Final     State
	Plan      []State // set when run with astar.WithReturnPath
	Stats     astar.Stats
}
