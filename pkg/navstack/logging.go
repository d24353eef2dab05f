package navstack

import (
	"log/slog"

	"github.com/aviru02/navstack/pkg/navstack/internal"
)

// SetLogPath sets the full path for the rotating log file, including
// filename. Creates all necessary parent directories.
// Call before the first navigation operation to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger flushes and closes the log file.
// Call before program exit if file logging was used.
func CloseLogger() {
	internal.CloseLogger()
}
