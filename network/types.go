package network

import "errors"

// Sentinel errors for network construction and lookups.
var (
	// ErrMalformedInput indicates missing, duplicate or inconsistent valve data.
	ErrMalformedInput = errors.New("network: malformed input")

	// ErrUnknownValve indicates a lookup of a label that is not in the network.
	ErrUnknownValve = errors.New("network: unknown valve")
)

// Unreachable is the distance reported between valves with no tunnel path.
const Unreachable = -1

// MaxRelevant is the largest number of relevant valves a Network supports.
const MaxRelevant = 64

// Valve is one node of the network as supplied by a parser.
type Valve struct {
	// Label uniquely identifies the valve, e.g. "AA".
	Label string `yaml:"label"`

	// Rate is the flow gained per tick once the valve is open.
	Rate int64 `yaml:"rate"`

	// Tunnels lists the labels of directly connected valves.
	Tunnels []string `yaml:"tunnels"`
}

// Network is the immutable, indexed form of a valve list.
type Network struct {
	valves   []Valve
	index    map[string]int
	dist     [][]int // dist[u][v] in hops, Unreachable if none
	relevant []int   // valve indices with Rate > 0, in input order
	bit      []int   // valve index → relevant bit, -1 when irrelevant
	maxRate  int64   // sum of all relevant rates
}
