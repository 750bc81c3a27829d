// Package metrics records search statistics as Prometheus collectors.
//
// The command line tool is a batch job, so collectors live on a private
// registry and are written once, on exit, in the text exposition format
// (see WriteFile) for a node-exporter textfile collector to pick up.
//
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/horizon/astar"
)

const namespace = "horizon"

// Search outcomes, used as the "outcome" label.
const (
	OutcomeOK         = "ok"
	OutcomeNoSolution = "no_solution"
	OutcomeLimit      = "expansion_limit"
	OutcomeCancelled  = "cancelled"
	OutcomeError      = "error"
)

// Recorder groups the collectors of one run.
type Recorder struct {
	searches  *prometheus.CounterVec
	expanded  *prometheus.CounterVec
	generated *prometheus.CounterVec
	frontier  *prometheus.GaugeVec
	duration  *prometheus.HistogramVec
	objective *prometheus.GaugeVec
}

// New registers the collectors on reg; nil selects prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Recorder{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Searches finished, by variant and outcome.",
		}, []string{"variant", "outcome"}),
		expanded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "expanded_total",
			Help:      "States expanded, by variant.",
		}, []string{"variant"}),
		generated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "generated_total",
			Help:      "Successor states generated, by variant.",
		}, []string{"variant"}),
		frontier: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "max_frontier",
			Help:      "Largest open list seen by the last search, by variant.",
		}, []string{"variant"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time per search, by variant.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"variant"}),
		objective: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "objective",
			Help:      "Best objective value found, by variant and sub-problem.",
		}, []string{"variant", "subproblem"}),
	}
}

// ObserveSearch records one finished search. stats may be zero when the
// search failed before producing any.
func (r *Recorder) ObserveSearch(variant string, stats astar.Stats, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(variant, Outcome(err)).Inc()
	r.expanded.WithLabelValues(variant).Add(float64(stats.Expanded))
	r.generated.WithLabelValues(variant).Add(float64(stats.Generated))
	r.frontier.WithLabelValues(variant).Set(float64(stats.MaxFrontier))
	r.duration.WithLabelValues(variant).Observe(elapsed.Seconds())
}

// SetObjective records the value found for sub-problem id.
func (r *Recorder) SetObjective(variant string, id int, v int64) {
	if r == nil {
		return
	}
	r.objective.WithLabelValues(variant, strconv.Itoa(id)).Set(float64(v))
}

// Outcome classifies a search error for the "outcome" label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, astar.ErrNoSolution):
		return OutcomeNoSolution
	case errors.Is(err, astar.ErrExpansionLimit):
		return OutcomeLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}

// WriteFile writes everything g gathers to path in the text format.
func WriteFile(g prometheus.Gatherer, path string) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
