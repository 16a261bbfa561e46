package labelindex

import "log/slog"

type options struct {
	maxLabeledTiles int
	logger          *slog.Logger
}

type Option interface {
	apply(*options)
}

type maxLabeledTiles int

func (m maxLabeledTiles) apply(o *options) {
	o.maxLabeledTiles = int(m)
}

// WithMaxLabeledTiles bounds the number of keys of one group kept by PruneOrNoop.
// Default: 0, unbounded
func WithMaxLabeledTiles(n int) Option {
	return maxLabeledTiles(n)
}

type loggerOption struct {
	log *slog.Logger
}

func (l loggerOption) apply(o *options) {
	if l.log != nil {
		o.logger = l.log
	}
}

// Default: slog.Default(), also kept when log is nil
func WithLogger(log *slog.Logger) Option {
	return loggerOption{log: log}
}

func loadOptions(opts ...Option) options {
	options := options{
		logger: slog.Default(),
	}
	for _, o := range opts {
		o.apply(&options)
	}
	return options
}
