// Package cli wires the solver packages into the horizon command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/horizon/astar"
	"github.com/katalvlaran/horizon/internal/config"
	"github.com/katalvlaran/horizon/metrics"
)

// progressEvery is the expansion interval between progress log lines.
const progressEvery = 100_000

// app is the state shared by every command of one invocation.
type app struct {
	configPath string
	stdout     io.Writer
	stderr     io.Writer

	cfg *config.Config
	log *slog.Logger
	reg *prometheus.Registry
	rec *metrics.Recorder
}

// NewRootCommand builds the command tree. Results go to stdout, logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	d := config.Default()

	root := &cobra.Command{
		Use:   "horizon",
		Short: "Best-first planning over time-bounded decision processes",
		Long: `horizon finds optimal plans for puzzles whose score accrues over a fixed
number of ticks.

Examples:
  horizon valves input.txt --horizon 30
  horizon valves input.txt --horizon 26 --actors 2 --plan
  horizon factory blueprints.txt --mode quality
  horizon factory blueprints.txt --mode top --first 3 --horizon 32
  horizon climb heightmap.txt --lowest`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: horizon.yaml in . or ./configs)")
	pf.String("log-level", d.Logging.Level, "log level: debug, info, warn, error")
	pf.String("log-format", d.Logging.Format, "log format: text or json")
	pf.String("metrics-file", d.Metrics.File, "write Prometheus metrics to this file on exit")
	bindKeys(root, map[string]string{
		"log-level":    "logging.level",
		"log-format":   "logging.format",
		"metrics-file": "metrics.file",
	})

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(a.newValvesCommand())
	root.AddCommand(a.newFactoryCommand())
	root.AddCommand(a.newClimbCommand())

	return root
}

// Execute runs the command tree against the process streams.
func Execute(ctx context.Context) int {
	if err := NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}

// bindKeys records which config key each flag of cmd overrides.
func bindKeys(cmd *cobra.Command, keys map[string]string) {
	if cmd.Annotations == nil {
		cmd.Annotations = make(map[string]string, len(keys))
	}
	for flag, key := range keys {
		cmd.Annotations[flag] = key
	}
}

// setup loads configuration with the flags of cmd and its root bound, then
// builds the logger and metrics registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var bindings []config.Binding
	for _, c := range []*cobra.Command{cmd.Root(), cmd} {
		for flag, key := range c.Annotations {
			bindings = append(bindings, config.Binding{Key: key, Flag: cmd.Flags().Lookup(flag)})
		}
	}

	cfg, err := config.Load(a.configPath, bindings...)
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg.Logging, a.stderr)
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	a.reg = prometheus.NewRegistry()
	a.rec = metrics.New(a.reg)
	a.log.Debug("configuration loaded", "command", cmd.Name(), "config", a.configPath)

	return nil
}

// run adapts fn to cobra and flushes metrics whatever fn returns.
func (a *app) run(fn func(ctx context.Context, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd.Context(), args)
		if ferr := a.flushMetrics(); ferr != nil {
			if err == nil {
				return ferr
			}
			a.log.Error("metrics not written", "err", ferr)
		}

		return err
	}
}

func (a *app) flushMetrics() error {
	if a.cfg.Metrics.File == "" {
		return nil
	}
	if err := metrics.WriteFile(a.reg, a.cfg.Metrics.File); err != nil {
		return err
	}
	a.log.Debug("metrics written", "file", a.cfg.Metrics.File)

	return nil
}

// searchOptions are the astar options shared by every command.
func (a *app) searchOptions(variant string) []astar.Option {
	opts := []astar.Option{astar.WithOnExpand(a.progress(variant))}
	if n := a.cfg.Search.MaxExpansions; n > 0 {
		opts = append(opts, astar.WithMaxExpansions(n))
	}

	return opts
}

func (a *app) progress(variant string) func(astar.Expansion) {
	return func(e astar.Expansion) {
		if e.Expanded%progressEvery != 0 {
			return
		}
		a.log.Debug("search progress",
			"variant", variant,
			"expanded", e.Expanded,
			"depth", e.Depth,
			"f", e.F,
			"frontier", e.Frontier,
		)
	}
}
