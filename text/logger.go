package text

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() { SetLogger(nil) }

// SetLogger sets the logger shared by every thumb package. Safe for
// concurrent use. A nil logger discards.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}

// printfLogger bridges Printf-style loggers, such as the one fontscan
// expects, into slog at debug level.
type printfLogger struct{}

func (printfLogger) Printf(format string, args ...interface{}) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("fontscan", "msg", fmt.Sprintf(format, args...))
}
