package network

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/horizon/bfs"
	"github.com/katalvlaran/horizon/core"
)

// New validates valves and builds a Network with its distance table.
//
// Validation (in order, first failure wins):
//  1. valves must be non-empty.
//  2. every Label must be non-empty and unique.
//  3. every Rate must be non-negative.
//  4. every tunnel must name an existing valve.
//  5. at most MaxRelevant valves may have Rate > 0.
func New(valves []Valve) (*Network, error) {
	if len(valves) == 0 {
		return nil, fmt.Errorf("%w: no valves", ErrMalformedInput)
	}

	n := &Network{
		valves: make([]Valve, len(valves)),
		index:  make(map[string]int, len(valves)),
		bit:    make([]int, len(valves)),
	}
	for i, v := range valves {
		if v.Label == "" {
			return nil, fmt.Errorf("%w: valve #%d has an empty label", ErrMalformedInput, i)
		}
		if _, dup := n.index[v.Label]; dup {
			return nil, fmt.Errorf("%w: duplicate valve %q", ErrMalformedInput, v.Label)
		}
		if v.Rate < 0 {
			return nil, fmt.Errorf("%w: valve %q has negative rate %d", ErrMalformedInput, v.Label, v.Rate)
		}
		// own the tunnel slice so later caller edits cannot leak in
		v.Tunnels = append([]string(nil), v.Tunnels...)
		n.valves[i] = v
		n.index[v.Label] = i
		n.bit[i] = -1
		if v.Rate > 0 {
			n.bit[i] = len(n.relevant)
			n.relevant = append(n.relevant, i)
			n.maxRate += v.Rate
		}
	}
	for _, v := range n.valves {
		for _, t := range v.Tunnels {
			if _, ok := n.index[t]; !ok {
				return nil, fmt.Errorf("%w: valve %q tunnels to unknown valve %q", ErrMalformedInput, v.Label, t)
			}
		}
	}
	if len(n.relevant) > MaxRelevant {
		return nil, fmt.Errorf("%w: %d valves with positive rate exceed the limit of %d",
			ErrMalformedInput, len(n.relevant), MaxRelevant)
	}

	dist, err := n.hops()
	if err != nil {
		return nil, err
	}
	n.dist = dist

	return n, nil
}

// hops builds the tunnel graph and runs one breadth-first search per valve.
// Entries for valves no search reached stay Unreachable.
func (n *Network) hops() ([][]int, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, v := range n.valves {
		if err := g.AddVertex(v.Label); err != nil {
			return nil, fmt.Errorf("%w: valve %q: %v", ErrMalformedInput, v.Label, err)
		}
	}
	for _, v := range n.valves {
		for _, t := range v.Tunnels {
			if g.HasEdge(v.Label, t) {
				continue // repeated tunnel
			}
			if _, err := g.AddEdge(v.Label, t, 0); err != nil {
				return nil, fmt.Errorf("%w: tunnel %s→%s: %v", ErrMalformedInput, v.Label, t, err)
			}
		}
	}

	dist := make([][]int, len(n.valves))
	for u, v := range n.valves {
		res, err := bfs.BFS(g, v.Label)
		if err != nil {
			return nil, fmt.Errorf("network: hops from %q: %w", v.Label, err)
		}
		row := make([]int, len(n.valves))
		for i := range row {
			row[i] = Unreachable
		}
		for label, d := range res.Depth {
			row[n.index[label]] = d
		}
		dist[u] = row
	}

	return dist, nil
}

// Len returns the number of valves.
func (n *Network) Len() int { return len(n.valves) }

// Valve returns a copy of the valve at index i.
func (n *Network) Valve(i int) Valve {
	v := n.valves[i]
	v.Tunnels = append([]string(nil), v.Tunnels...)

	return v
}

// Rate returns the flow rate of valve i without copying its tunnels.
func (n *Network) Rate(i int) int64 { return n.valves[i].Rate }

// Label returns the label of valve i.
func (n *Network) Label(i int) string { return n.valves[i].Label }

// Index returns the index of the valve labelled label.
func (n *Network) Index(label string) (int, bool) {
	i, ok := n.index[label]

	return i, ok
}

// Distance returns the hop count from valve u to valve v, or Unreachable.
func (n *Network) Distance(u, v int) int { return n.dist[u][v] }

// DistanceBetween is Distance addressed by labels.
func (n *Network) DistanceBetween(from, to string) (int, error) {
	u, ok := n.index[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, from)
	}
	v, ok := n.index[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, to)
	}

	return n.dist[u][v], nil
}

// Relevant returns the indices of valves with a positive rate, ordered by
// their relevant bit. The slice is a copy.
func (n *Network) Relevant() []int { return append([]int(nil), n.relevant...) }

// RelevantCount returns the number of relevant valves.
func (n *Network) RelevantCount() int { return len(n.relevant) }

// RelevantValve returns the valve index holding relevant bit b.
func (n *Network) RelevantValve(b int) int { return n.relevant[b] }

// Bit returns the relevant bit of valve i, or false if i has zero rate.
func (n *Network) Bit(i int) (int, bool) {
	b := n.bit[i]

	return b, b >= 0
}

// MaxRate returns the total rate obtained with every relevant valve open.
func (n *Network) MaxRate() int64 { return n.maxRate }

// RatesDescending returns the rates of relevant valves whose bit is not set
// in open, largest first.
func (n *Network) RatesDescending(open uint64) []int64 {
	out := make([]int64, 0, len(n.relevant))
	for b, i := range n.relevant {
		if open&(1<<uint(b)) == 0 {
			out = append(out, n.valves[i].Rate)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })

	return out
}
