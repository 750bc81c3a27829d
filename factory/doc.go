// Package factory maximises the number of geodes a robot factory can crack
// within a fixed number of ticks, for one or many blueprints.
//
// A Blueprint is a menu of buildable items, each with a resource.Vector cost
// and a resource.Vector yield that is added to the production rate once the
// item is built. The factory starts with one ore-collecting robot and can
// build at most one item per tick:
//
//	tick:  pay cost → collect at the rate in force → new item starts producing
//
// Enumeration only offers items that are affordable and can still pay off
// before the horizon: value-yielding items need two ticks, everything else
// four, and no resource is produced faster than the blueprint can spend it.
// Wait is offered only when at least one item type cannot be built.
//
// Each blueprint is solved with package astar by charging every tick the
// deficit between a geode-rate ceiling and the current geode rate. The
// heuristic is the larger of two relaxations: the geode rate growing by the
// largest geode yield every tick, and a simulation that builds every
// affordable item each tick without paying for it.
//
// SolveAll runs one search per blueprint on a bounded worker pool
// (package partition); QualitySum and TopProduct aggregate the results.
package factory
