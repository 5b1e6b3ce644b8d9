package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var Logger *slog.Logger

var logFile *os.File

func init() {
	// Quiet until Setup is called; CI output must stay exactly what the commands print
	Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Setup points the package logger at a log file and/or stderr.
// With no file and verbose off, records are discarded.
func Setup(path, level string, verbose bool) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	var writers []io.Writer
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		Close()
		logFile = f
		writers = append(writers, f)
	}
	if verbose {
		lvl = slog.LevelDebug
		writers = append(writers, os.Stderr)
	}

	var out io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	Logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: lvl,
	}))
	return nil
}

// Close releases the log file opened by Setup, if any.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
