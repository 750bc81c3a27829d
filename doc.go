// Package horizon plans over time-bounded decision processes.
//
// A process starts in a known state, advances one tick per joint action and
// stops at a fixed horizon; the goal is to maximise a quantity accrued along
// the way. Each tick's shortfall against an upper bound becomes a
// non-negative edge cost, so maximisation turns into a shortest-path problem
// that a best-first search with an admissible heuristic solves exactly.
//
// Packages:
//
//	core/       thread-safe string-ID graph
//	bfs/        breadth-first search over core graphs
//	resource/   fixed-arity quantity vectors with checked subtraction
//	network/    valve network with precomputed hop distances
//	astar/      generic best-first search engine
//	valve/      valve-opening planner for one or two actors
//	factory/    robot-factory planner per blueprint
//	partition/  bounded worker pool for independent sub-problems
//	heightmap/  shortest climbs on an elevation grid
//	puzzle/     text and YAML input decoding
//	metrics/    Prometheus collectors for search statistics
//
// The horizon command (cmd/horizon) exposes the planners on the command
// line, configured through flags, HZ_* environment variables or a
// horizon.yaml file.
package horizon
