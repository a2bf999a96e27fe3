package entigo

type options struct {
	logger   *Logger
	metrics  MetricsCollector
	capacity int
}

// Option configures World construction behavior.
type Option func(*options)

// WithLogger configures the logger used for world-level operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics collector invoked after
// entity and registry operations.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithCapacity hints the number of live entities the world should size its
// allocator for. The world grows past it transparently.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
