package decor

import "log/slog"

// Option configures a Painter during creation.
//
// Example:
//
//	p := decor.NewPainter(decor.WithStrokeMiterLimit(4))
type Option func(*painterOptions)

type painterOptions struct {
	logger     *slog.Logger
	miterLimit float64
}

// DefaultMiterLimit is the miter limit passed to StrokePath unless
// WithStrokeMiterLimit overrides it.
const DefaultMiterLimit = 10

func defaultOptions() painterOptions {
	return painterOptions{miterLimit: DefaultMiterLimit}
}

// WithLogger routes the painter's own log records to l instead of the
// package logger. Geometry helpers keep logging through Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *painterOptions) {
		o.logger = l
	}
}

// WithStrokeMiterLimit sets the miter limit passed with every stroke.
// Values below 1 are ignored.
func WithStrokeMiterLimit(limit float64) Option {
	return func(o *painterOptions) {
		if limit >= 1 {
			o.miterLimit = limit
		}
	}
}
