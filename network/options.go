package network

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Planner.
type Option func(*Options)

// Options holds the Planner configuration.
type Options struct {
	// Ctx cancels layer construction between bands; defaults to
	// context.Background().
	Ctx context.Context

	// Log receives per-layer Debug events and one Info event per planned
	// schedule. Defaults to a logger writing to io.Discard.
	Log *logrus.Entry

	// Parallelism caps how many layers are built at once. 1 builds them
	// one after another.
	Parallelism int
}

// DefaultOptions returns Options with a background context, a silent logger
// and sequential layer construction.
func DefaultOptions() Options {
	var silent = logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Ctx:         context.Background(),
		Log:         logrus.NewEntry(silent),
		Parallelism: 1,
	}
}

// WithContext sets the cancellation context. A nil ctx keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes planner events to log. Panics on nil.
func WithLogger(log *logrus.Entry) Option {
	if log == nil {
		panic("network: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Log = log
	}
}

// WithParallelism builds up to k layers concurrently. Panics if k < 1.
func WithParallelism(k int) Option {
	if k < 1 {
		panic("network: WithParallelism(k<1)")
	}
	return func(o *Options) {
		o.Parallelism = k
	}
}
