// Package internal contains the logging infrastructure shared by the
// navstack packages. Types and functions in this package are not part of
// the public API.
package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logPath string

	setupOnce sync.Once
	logWriter io.WriteCloser
	logDest   io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the rotating log file, including
// filename. Creates all necessary parent directories. Call before the first
// logger use to take effect.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		targetPath := logPath
		if targetPath == "" {
			targetPath = filepath.Join("logs", "navstack.log")
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			// Logs go to the file only: the host layer owns the terminal,
			// so stdout is not a usable fallback.
			logDest = io.Discard
			return
		}

		rotating := &lumberjack.Logger{
			Filename:   targetPath,
			MaxSize:    1, // megabytes
			MaxBackups: 2,
			MaxAge:     30, // days
		}
		logWriter = rotating
		logDest = rotating
	})
}

// GetLogger returns the application logger exposed to consuming apps.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(logDest, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// GetInternalLogger returns the logger used by navstack itself. It stays at
// error level unless NAVSTACK_DEBUG is set in the environment.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		if os.Getenv("NAVSTACK_DEBUG") != "" {
			internalLevelVar.Set(slog.LevelDebug)
		} else {
			internalLevelVar.Set(slog.LevelError)
		}

		setup()

		handler := slog.NewJSONHandler(logDest, &slog.HandlerOptions{
			Level:     internalLevelVar,
			AddSource: false,
		})
		internalLogger = slog.New(handler)
	})
	return internalLogger
}

// SetLogLevel sets the minimum level for the application logger.
func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// SetInternalLogLevel sets the minimum level for the internal logger.
func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// SetRawLogLevel parses and sets the application log level from a string.
// Unknown values fall back to info.
func SetRawLogLevel(rawLevel string) {
	var level slog.Level

	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	GetLogger()
	levelVar.Set(level)
}

// CloseLogger flushes and closes the rotating log file, if one was opened.
func CloseLogger() {
	if logWriter != nil {
		logWriter.Close()
	}
}
