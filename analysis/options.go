package analysis

import "github.com/rs/zerolog"

// Option adjusts session construction.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// defaultOptions returns the baseline configuration: a no-op logger.
func defaultOptions() options {
	return options{log: zerolog.Nop()}
}

// gatherOptions folds user options over the defaults.
func gatherOptions(opts ...Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes session diagnostics, such as degraded sigma bounds and
// covariance recomputes, to the given logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}
