package resource

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnderflow is returned by Sub when a component would become negative.
var ErrUnderflow = errors.New("resource: subtraction underflow")

// Kind names one component of a Vector.
type Kind int

const (
	Ore Kind = iota
	Clay
	Obsidian
	Geode
)

// Arity is the number of components in every Vector.
const Arity = 4

var kindNames = [Arity]string{"ore", "clay", "obsidian", "geode"}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= Arity {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps a name such as "obsidian" back to its Kind.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}

	return 0, false
}

// Vector is an ordered tuple of quantities indexed by Kind.
// The zero value is the additive identity.
type Vector [Arity]int64

// Of returns a Vector holding n units of k and nothing else.
func Of(k Kind, n int64) Vector {
	var v Vector
	v[k] = n

	return v
}

// Get returns the quantity of k.
func (v Vector) Get(k Kind) int64 { return v[k] }

// Add returns the componentwise sum v + w.
func (v Vector) Add(w Vector) Vector {
	for i := range v {
		v[i] += w[i]
	}

	return v
}

// Sub returns v - w. It fails with ErrUnderflow, naming the first short
// component, unless v.SufficientFor(w).
func (v Vector) Sub(w Vector) (Vector, error) {
	for i := range v {
		if v[i] < w[i] {
			return Vector{}, fmt.Errorf("%w: %s %d < %d", ErrUnderflow, Kind(i), v[i], w[i])
		}
	}
	for i := range v {
		v[i] -= w[i]
	}

	return v, nil
}

// Scale returns v multiplied componentwise by k.
func (v Vector) Scale(k int64) Vector {
	for i := range v {
		v[i] *= k
	}

	return v
}

// SufficientFor reports whether v[i] >= cost[i] for every component.
func (v Vector) SufficientFor(cost Vector) bool {
	for i := range v {
		if v[i] < cost[i] {
			return false
		}
	}

	return true
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool { return v == Vector{} }

// HasNegative reports whether any component is below zero.
func (v Vector) HasNegative() bool {
	for _, x := range v {
		if x < 0 {
			return true
		}
	}

	return false
}

// Max returns the componentwise maximum of v and w.
func (v Vector) Max(w Vector) Vector {
	for i := range v {
		if w[i] > v[i] {
			v[i] = w[i]
		}
	}

	return v
}

// String renders the non-zero components, e.g. "3 ore, 8 obsidian".
// The zero vector renders as "none".
func (v Vector) String() string {
	parts := make([]string, 0, Arity)
	for i, x := range v {
		if x != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", x, Kind(i)))
		}
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, ", ")
}
