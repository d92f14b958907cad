package ggui

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() { SetLogger(nil) }

// SetLogger routes ggui diagnostics to l. Windows log their creation and
// closing at Info, dropped or refused frames at Warn and a line per
// committed frame at Debug. A nil l silences ggui again, which is also the
// state before the first call.
//
// The logger may be replaced at any time, from any goroutine:
//
//	ggui.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger { return logger.Load() }
