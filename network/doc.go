// Package network holds the static, precomputed description of a valve
// network: valves with a flow rate, the tunnels between them, and the
// all-pairs shortest hop distances derived from those tunnels.
//
// What
//
//   - New validates the raw valve list and fails with ErrMalformedInput on
//     empty or duplicate labels, negative rates, unknown tunnel targets, or
//     more relevant valves than fit into a 64-bit open-set mask.
//   - Distances are computed once: the tunnels are loaded into a directed
//     core.Graph and bfs.BFS runs from every valve, so a planner can express movement as a single jump to a target valve
//     instead of one tunnel per decision.
//   - Relevant valves (rate > 0) are numbered 0..R-1. Only these are ever
//     worth opening; zero-rate valves are waypoints.
//
// Determinism
//
//	Valves are indexed in input order, so distances and relevant bits are
//	reproducible. Repeated tunnels collapse to one edge; a tunnel from a
//	valve to itself is accepted and changes nothing.
//
// Complexity (V = |valves|, E = |tunnels|)
//
//   - New:      O(V·(V + E)) time, O(V²) memory for the distance table.
//   - Distance: O(1).
//
// Thread safety
//
//	A Network is immutable after New returns and may be shared read-only
//	by any number of concurrent searches.
package network
