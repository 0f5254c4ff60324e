package decor

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// building attributes altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger; SetLogger may race with painting.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by decor and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by decor:
//   - [slog.LevelDebug]: numeric normalization (radius clamping, negative
//     blur, unmatched shadow lists)
//   - [slog.LevelWarn]: surfaces that cannot honour a request, such as an
//     unbalanced clip stack
//
// Example:
//
//	decor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (raster, recording,
// specfile) call it to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
