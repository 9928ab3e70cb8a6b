package eventlog

import "log/slog"

// Option configures Read, Load, Write and Save.
type Option func(*options)

type options struct {
	layout Layout
	logger *slog.Logger
}

func buildOptions(opts []Option) options {
	o := options{layout: DefaultLayout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// WithLayout sets the timestamp layout used on write. Reading accepts any
// weekday text and separator regardless.
func WithLayout(l Layout) Option {
	return func(o *options) { o.layout = l }
}

// WithLogger sets the logger for debug output. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
