// Package partition runs independent sub-problems on a bounded worker pool
// and folds their results.
//
// Run dispatches fn once per item through an errgroup limited to the
// configured number of workers. Sub-problems share nothing; each receives
// its zero-based index as an ID. The first failure cancels the shared
// context and Run returns that error with no partial results.
//
//	outs, err := partition.Run(ctx, blueprints, solveOne,
//	        partition.WithWorkers(4),
//	        partition.WithLogger(logger),
//	)
//
// Outcomes come back indexed by ID, so aggregation never depends on the
// order in which workers finish. QualitySum, TopProduct and Max are the
// aggregation modes used by the command line tool.
package partition
