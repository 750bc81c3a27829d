package astar

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by Search.
var (
	// ErrNilKey indicates that Problem.Key is nil.
	ErrNilKey = errors.New("astar: key function is nil")

	// ErrNilSuccessors indicates that Problem.Successors is nil.
	ErrNilSuccessors = errors.New("astar: successor function is nil")

	// ErrNilGoal indicates that Problem.IsGoal is nil.
	ErrNilGoal = errors.New("astar: goal test is nil")

	// ErrNegativeCost indicates that a successor edge carried a negative cost.
	ErrNegativeCost = errors.New("astar: negative edge cost")

	// ErrNegativeHeuristic indicates that the heuristic returned a negative value.
	ErrNegativeHeuristic = errors.New("astar: negative heuristic estimate")

	// ErrNoSolution indicates that the open list was exhausted before a goal
	// state was reached: there is no feasible plan.
	ErrNoSolution = errors.New("astar: no solution")

	// ErrExpansionLimit indicates that MaxExpansions was reached.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Step is one outgoing edge of a state: the successor and the edge cost.
type Step[S any] struct {
	State S
	Cost  int64
}

// Problem describes an implicit search space.
//
// Key defines state equality for deduplication. Two states with the same key
// are interchangeable for the remainder of the search, so only the cheaper of
// them is kept. Heuristic may be nil, which degrades the search to Dijkstra.
type Problem[S any, K comparable] struct {
	Start      S
	Key        func(S) K
	Successors func(S) ([]Step[S], error)
	Heuristic  func(S) int64
	IsGoal     func(S) bool
}

// Expansion describes one state as it is removed from the open list.
// It is handed to the OnExpand hook.
type Expansion struct {
	Expanded int   // number of states expanded so far, including this one
	Depth    int   // number of edges from the start state
	G        int64 // accumulated cost
	F        int64 // accumulated cost plus heuristic
	Frontier int   // open-list size after the pop
}

// Stats summarises a finished search.
type Stats struct {
	Expanded    int // states popped and expanded
	Generated   int // successors produced by Problem.Successors
	Pushed      int // successors that improved their key and entered the heap
	Reopened    int // keys re-opened after a cheaper path was found
	MaxFrontier int // largest open-list size observed
}

// Result is the outcome of a successful search.
type Result[S any] struct {
	// Goal is the first goal state popped; any optimal goal is acceptable.
	Goal S

	// Cost is the accumulated cost of the path to Goal.
	Cost int64

	// Path holds the states from Start to Goal inclusive when WithReturnPath
	// was given, nil otherwise.
	Path []S

	Stats Stats
}

// Option configures Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds tunables and hooks for a single Search.
type Options struct {
	// Ctx allows cooperative cancellation.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search after that many expansions.
	MaxExpansions int

	// ReturnPath keeps parent links so the path can be rebuilt.
	ReturnPath bool

	// OnExpand is called for every expanded state.
	OnExpand func(Expansion)

	err error
}

// DefaultOptions returns Options with a background context, no expansion
// limit, no path reconstruction and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		ReturnPath:    false,
		OnExpand:      func(Expansion) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  limit to n expansions
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithReturnPath requests the start→goal path in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnExpand registers an observer invoked for every expanded state.
func WithOnExpand(fn func(Expansion)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
