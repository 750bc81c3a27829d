// Package resource provides Vector, a fixed-arity tuple of named quantities
// used both as an inventory (what is in stock) and as a production rate
// (what is gained per tick).
//
// Vectors form a commutative monoid under Add. Sub is only defined when the
// minuend is SufficientFor the subtrahend; otherwise it fails with
// ErrUnderflow, which callers must treat as an invariant violation rather
// than a recoverable condition.
//
// All operations are pure: they take vectors by value and return new ones,
// so every search state owns an independent snapshot.
//
// Example:
//
//	stock := resource.Of(resource.Ore, 4).Add(resource.Of(resource.Clay, 14))
//	cost := resource.Vector{3, 14, 0, 0}
//	if stock.SufficientFor(cost) {
//	    left, _ := stock.Sub(cost) // {1 0 0 0}
//	}
package resource
