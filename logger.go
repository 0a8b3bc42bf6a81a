package thumb

import (
	"log/slog"

	"github.com/gogpu/thumb/text"
)

// SetLogger routes the debug and warning records of thumb and its
// sub-packages to l. Nothing is logged by default; nil restores that.
func SetLogger(l *slog.Logger) {
	text.SetLogger(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return text.Logger()
}
