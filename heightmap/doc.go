// Package heightmap finds shortest climbs on a rectangular elevation grid.
//
// What:
//
//   - Map wraps an immutable [][]int of elevations with a marked start and end.
//   - Parse reads the letter form: 'a'..'z' are elevations 0..25, 'S' is the
//     start at elevation 0 and 'E' the end at elevation 25.
//   - ShortestClimb runs package astar with unit step costs and an integer
//     Euclidean heuristic. A step may go to any 4-neighbour at most one unit
//     higher; descending is unrestricted.
//   - FewestSteps tries every lowest cell as a start and keeps the best
//     reachable result.
//
// This is the pure path-shortening use of the search engine: every step
// costs one and the heuristic never exceeds the Manhattan distance.
//
// Complexity:
//
//   - New, Parse:    O(W×H) time and memory.
//   - ShortestClimb: O(W×H log(W×H)) time, O(W×H) memory.
//   - FewestSteps:   one ShortestClimb per lowest cell.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a character or elevation outside the letter range.
//   - ErrNoStart, ErrNoEnd: a marker is missing, duplicated or out of bounds.
package heightmap
