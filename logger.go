package pixl

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a worker band is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for pixl and its sub-packages.
// By default, pixl produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by pixl:
//   - [slog.LevelDebug]: per-pass diagnostics (node count, bands, anti-aliasing)
//   - [slog.LevelInfo]: command lifecycle (scene loaded, file written)
//   - [slog.LevelWarn]: recoverable problems (watcher errors)
//
// Example:
//
//	pixl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pixl.
// The scenefile package and the commands call this to share one
// configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
