// Package astar implements a generic best-first (A*) shortest-path search
// over implicit state spaces.
//
// Unlike package-level graph algorithms that walk a materialised graph, the
// search here never sees the whole space. The caller describes it through a
// Problem: a start state, a successor function, an admissible heuristic, a
// goal test, and a key function that defines state equality for
// deduplication. The engine only ever holds the states it has generated.
//
// Overview:
//
//   - The open list is a binary min-heap ordered by f = g + h, where g is the
//     accumulated edge cost and h the heuristic estimate of the remaining cost.
//     Ties on f are broken by insertion order, so repeated runs over the same
//     Problem expand states in the same order and return the same goal.
//   - A best-known-cost map keyed by Problem.Key records the cheapest g seen
//     per equivalence class. A successor is pushed only if it strictly
//     improves that entry; stale heap entries are skipped when popped
//     instead of being updated in place (lazy decrease-key).
//   - The search terminates when a popped state satisfies IsGoal, or fails
//     with ErrNoSolution once the open list is exhausted.
//
// Optimality:
//
//	With non-negative edge costs and a heuristic that never overestimates the
//	true remaining cost, the first goal popped is optimal. Consistency is not
//	required: a cheaper path to an already expanded key re-opens it.
//
// Maximisation problems:
//
//	Value-maximising processes are solved by expressing every tick as a cost
//	deficit against the best possible rate, cost = best - rate, so that the
//	cheapest path is the most valuable one (see packages valve and factory).
//
// Options:
//
//   - WithContext(ctx):       cooperative cancellation checked in the main loop.
//   - WithMaxExpansions(n):   abort with ErrExpansionLimit after n expansions.
//   - WithReturnPath():       keep parent links and return the start→goal path.
//   - WithOnExpand(fn):       observer hook invoked for every expanded state.
//
// Errors:
//
//   - ErrNilKey / ErrNilSuccessors / ErrNilGoal: incomplete Problem.
//   - ErrNegativeCost:      a successor edge had a negative cost.
//   - ErrNegativeHeuristic: the heuristic returned a negative estimate.
//   - ErrNoSolution:        the open list emptied before any goal was reached.
//   - ErrExpansionLimit:    MaxExpansions was reached.
//   - ErrOptionViolation:   an invalid option was supplied.
//   - ctx.Err():            the context was cancelled.
//   - Any error returned by Successors, unchanged.
//
// Complexity:
//
//   - Time:  O(N log N) for N generated states (heap operations dominate).
//   - Space: O(N) for the heap, plus O(K) for the best-known map over K keys.
//
// Thread safety:
//
//	Search is single-threaded and has no internal suspension points. Distinct
//	searches may run concurrently as long as their Problems do not share
//	mutable state.
package astar
