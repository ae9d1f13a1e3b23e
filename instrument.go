package orbitalshield

import "github.com/go-kit/log"

// Option configures the instrumentation of a component.
type Option func(*instrumentation)

type instrumentation struct {
	logger  log.Logger
	metrics *Collector
}

func newInstrumentation(opts []Option) instrumentation {
	in := instrumentation{logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// WithLogger sets the logger. A nil logger discards everything.
func WithLogger(l log.Logger) Option {
	return func(in *instrumentation) {
		if l == nil {
			l = log.NewNopLogger()
		}
		in.logger = l
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(c *Collector) Option {
	return func(in *instrumentation) {
		in.metrics = c
	}
}
