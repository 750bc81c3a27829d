package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/horizon/astar"
	"github.com/katalvlaran/horizon/heightmap"
	"github.com/katalvlaran/horizon/internal/config"
	"github.com/katalvlaran/horizon/puzzle"
)

func (a *app) newClimbCommand() *cobra.Command {
	var lowest bool
	d := config.Default()

	cmd := &cobra.Command{
		Use:   "climb <input>",
		Short: "Fewest steps up a heightmap",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(ctx context.Context, args []string) error {
		m, err := puzzle.HeightmapFile(args[0])
		if err != nil {
			return err
		}

		began := time.Now()
		r, err := heightmap.ShortestClimb(ctx, m, m.Start, m.End, a.searchOptions("climb")...)
		a.rec.ObserveSearch("climb", routeStats(r), time.Since(began), err)
		if err != nil {
			return err
		}
		a.rec.SetObjective("climb", 0, r.Steps)
		fmt.Fprintf(a.stdout, "from start: %d\n", r.Steps)

		if lowest {
			began = time.Now()
			r, err = heightmap.FewestSteps(ctx, m, a.searchOptions("climb")...)
			a.rec.ObserveSearch("climb", routeStats(r), time.Since(began), err)
			if err != nil {
				return err
			}
			a.rec.SetObjective("climb", 1, r.Steps)
			fmt.Fprintf(a.stdout, "from lowest: %d (%v)\n", r.Steps, r.From)
		}

		return nil
	})

	f := cmd.Flags()
	f.BoolVar(&lowest, "lowest", false, "also find the best start among the lowest cells")
	f.Int("max-expansions", d.Search.MaxExpansions, "abort after this many expansions (0: unlimited)")
	bindKeys(cmd, map[string]string{"max-expansions": "search.max_expansions"})

	return cmd
}

func routeStats(r *heightmap.Route) astar.Stats {
	if r == nil {
		return astar.Stats{}
	}

	return r.Stats
}
