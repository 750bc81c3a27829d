package partition

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

var (
	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("partition: option violation")

	// ErrNilFunc is returned when Run receives no work function.
	ErrNilFunc = errors.New("partition: nil work function")

	// ErrTooFew is returned by TopProduct when fewer outcomes than requested exist.
	ErrTooFew = errors.New("partition: not enough outcomes")
)

// Options configures Run.
type Options struct {
	Workers int
	Logger  *slog.Logger

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions uses one worker per available CPU and discards logs.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers bounds the number of sub-problems solved concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger used for per-item progress. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
