// Package valve maximises the total flow released from a valve network
// within a fixed number of ticks by one or two cooperating actors.
//
// Model
//
//	Every tick each actor chooses one action from a small closed menu:
//
//	  MoveTo(v)  commit to travel to relevant valve v, one tunnel per tick;
//	  Open(v)    open the valve the actor is standing on;
//	  Wait       do nothing (or keep travelling if already committed).
//
//	Movement is expressed as a jump over the precomputed shortest hop table of
//	package network, so an actor decides once per target instead of once per
//	tunnel. While travelling, an actor's only option is Wait.
//
// Joint transition
//
//	The actors' menus are combined by cartesian product. Combinations in
//	which two actors open the same valve in the same tick are discarded, since
//	they would count its rate twice. Each surviving combination advances time
//	by exactly one tick: flow is first released at the rate in force at the
//	start of the tick, then the actions take effect.
//
//	Once every relevant valve is open, or every actor is idle with nothing
//	useful left to do, a single fast-forward successor jumps to the horizon and
//	credits the remaining ticks at the now-fixed rate. The result is identical
//	to ticking one by one.
//
// Search
//
//	The maximisation is solved with package astar by charging every tick the
//	deficit against the network's full rate, cost = MaxRate - rate, so the
//	total path cost is Horizon*MaxRate - Released. The heuristic assumes every
//	actor opens the best closed valve on every remaining tick, with no travel,
//	and never overestimates.
//
// Usage
//
//	net, err := network.New(valves)
//	if err != nil { ... }
//	res, err := valve.Solve(ctx, net, valve.Config{Start: "AA", Horizon: 26, Actors: 2})
//	if err != nil { ... }
//	fmt.Println(res.Released)
package valve
