package textqueue

import (
	"github.com/rs/zerolog"

	"github.com/karta88821/textqueue/internal/telemetry"
)

type queueOptions struct {
	log     zerolog.Logger
	metrics *telemetry.AllocMetrics
	initial []string
}

func defaultOptions() queueOptions {
	return queueOptions{
		log:     zerolog.Nop(),
		metrics: telemetry.Default(),
	}
}

// Option configures a Queue at construction time.
type Option func(*queueOptions)

// WithLogger attaches a logger; mutating operations emit debug-level events.
func WithLogger(log zerolog.Logger) Option {
	return func(opts *queueOptions) {
		opts.log = log
	}
}

// WithMetrics routes the queue's allocation accounting to m instead of the
// shared default instance.
func WithMetrics(m *telemetry.AllocMetrics) Option {
	return func(opts *queueOptions) {
		if m != nil {
			opts.metrics = m
		}
	}
}

// WithValues seeds the queue with values in front-to-back order.
func WithValues(values ...string) Option {
	return func(opts *queueOptions) {
		opts.initial = append(opts.initial[:0], values...)
	}
}
