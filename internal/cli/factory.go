package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/horizon/astar"
	"github.com/katalvlaran/horizon/factory"
	"github.com/katalvlaran/horizon/internal/config"
	"github.com/katalvlaran/horizon/partition"
	"github.com/katalvlaran/horizon/puzzle"
)

func (a *app) newFactoryCommand() *cobra.Command {
	d := config.Default()

	cmd := &cobra.Command{
		Use:   "factory <input>",
		Short: "Maximise geodes per blueprint and aggregate",
		Long: `Solves every blueprint independently on a worker pool, prints the best
geode count of each, then the aggregate: the quality level (Σ (id+1)·geodes)
or the product of the top results.`,
		Args: cobra.ExactArgs(1),
	}
	cmd.RunE = a.run(func(ctx context.Context, args []string) error {
		bps, err := puzzle.BlueprintsFile(args[0])
		if err != nil {
			return err
		}
		fc := a.cfg.Factory
		bps = factory.FirstN(bps, fc.First)

		popts := []partition.Option{partition.WithLogger(a.log)}
		if fc.Workers > 0 {
			popts = append(popts, partition.WithWorkers(fc.Workers))
		}
		a.log.Info("solving blueprints", "blueprints", len(bps), "horizon", fc.Horizon, "mode", fc.Mode)

		began := time.Now()
		outs, err := factory.SolveAll(ctx, bps, factory.Config{Horizon: fc.Horizon, Target: fc.Target}, popts, a.searchOptions("factory")...)
		if err != nil {
			a.rec.ObserveSearch("factory", astar.Stats{}, time.Since(began), err)
			return err
		}
		for _, oc := range outs {
			a.rec.ObserveSearch("factory", oc.Value.Stats, oc.Elapsed, nil)
			a.rec.SetObjective("factory", oc.Value.Blueprint, oc.Value.Value)
			fmt.Fprintf(a.stdout, "blueprint %d: %d\n", oc.Value.Blueprint, oc.Value.Value)
		}

		switch fc.Mode {
		case "top":
			n := fc.Top
			if n > len(outs) {
				a.log.Warn("fewer results than requested", "requested", n, "available", len(outs))
				n = len(outs)
			}
			product, err := factory.TopProduct(outs, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "product: %d\n", product)
		default:
			fmt.Fprintf(a.stdout, "quality: %d\n", factory.QualityLevel(outs))
		}
		a.log.Info("blueprints solved", "elapsed", time.Since(began))

		return nil
	})

	f := cmd.Flags()
	f.Int("horizon", d.Factory.Horizon, "ticks available")
	f.Int64("target", d.Factory.Target, "require at least this many geodes (0: none)")
	f.Int("first", d.Factory.First, "only solve the first N blueprints (0: all)")
	f.Int("workers", d.Factory.Workers, "parallel searches (0: one per CPU)")
	f.String("mode", d.Factory.Mode, "aggregate: quality or top")
	f.Int("top", d.Factory.Top, "results multiplied in top mode")
	f.Int("max-expansions", d.Search.MaxExpansions, "abort each search after this many expansions (0: unlimited)")
	bindKeys(cmd, map[string]string{
		"horizon":        "factory.horizon",
		"target":         "factory.target",
		"first":          "factory.first",
		"workers":        "factory.workers",
		"mode":           "factory.mode",
		"top":            "factory.top",
		"max-expansions": "search.max_expansions",
	})

	return cmd
}
