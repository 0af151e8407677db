package cache

import "github.com/rs/zerolog"

type Option func(*options)

type options struct {
	logger zerolog.Logger
}

// WithLogger routes structural changes (level added/removed) to logger at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
