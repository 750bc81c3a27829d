package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/horizon/astar"
	"github.com/katalvlaran/horizon/internal/config"
	"github.com/katalvlaran/horizon/network"
	"github.com/katalvlaran/horizon/puzzle"
	"github.com/katalvlaran/horizon/valve"
)

func (a *app) newValvesCommand() *cobra.Command {
	var showPlan bool
	d := config.Default()

	cmd := &cobra.Command{
		Use:   "valves <input>",
		Short: "Maximise flow released from a valve network",
		Long: `Opens valves with one or two actors to release as much flow as possible
before the horizon. The input is the text valve listing or a .yaml file.`,
		Args: cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(ctx context.Context, args []string) error {
		valves, err := puzzle.ValvesFile(args[0])
		if err != nil {
			return err
		}
		net, err := network.New(valves)
		if err != nil {
			return err
		}

		sc := a.cfg.Search
		opts := a.searchOptions("valves")
		if showPlan {
			opts = append(opts, astar.WithReturnPath())
		}
		a.log.Info("solving valves",
			"valves", net.Len(),
			"relevant", net.RelevantCount(),
			"horizon", sc.Horizon,
			"actors", sc.Actors,
		)

		began := time.Now()
		res, err := valve.Solve(ctx, net, valve.Config{Start: sc.Start, Horizon: sc.Horizon, Actors: sc.Actors}, opts...)
		var stats astar.Stats
		if res != nil {
			stats = res.Stats
		}
		a.rec.ObserveSearch("valves", stats, time.Since(began), err)
		if err != nil {
			return err
		}
		a.rec.SetObjective("valves", 0, res.Released)
		a.log.Info("valves solved", "released", res.Released, "expanded", res.Stats.Expanded, "elapsed", time.Since(began))

		if showPlan {
			for _, ev := range valve.Events(net, res.Plan) {
				fmt.Fprintln(a.stdout, ev)
			}
		}
		fmt.Fprintln(a.stdout, res.Released)

		return nil
	})

	f := cmd.Flags()
	f.Int("horizon", d.Search.Horizon, "ticks available")
	f.Int("actors", d.Search.Actors, "number of actors (1 or 2)")
	f.String("start", d.Search.Start, "label of the start valve")
	f.Int("max-expansions", d.Search.MaxExpansions, "abort after this many expansions (0: unlimited)")
	f.BoolVar(&showPlan, "plan", false, "print the opening schedule")
	bindKeys(cmd, map[string]string{
		"horizon":        "search.horizon",
		"actors":         "search.actors",
		"start":          "search.start",
		"max-expansions": "search.max_expansions",
	})

	return cmd
}
