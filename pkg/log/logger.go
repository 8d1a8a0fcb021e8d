// Package log is the application-wide structured logger.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
)

// Logger wraps a slog.Logger and the file it writes to, if any.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	file   *os.File
}

var globalLogger *Logger

// init logs to stdout at info level until configured otherwise.
func init() {
	globalLogger = newLogger(os.Stdout, nil, slog.LevelInfo)
}

func newLogger(w io.Writer, file *os.File, level slog.Level) *Logger {
	lv := new(slog.LevelVar)
	lv.Set(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lv,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format("2006/01/02 15:04:05.000"))
			}
			return a
		},
	})
	return &Logger{logger: slog.New(handler), level: lv, file: file}
}

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return lv, nil
}

// SetLevel changes the minimum level of the global logger.
func SetLevel(level slog.Level) {
	globalLogger.level.Set(level)
}

// SetOutput redirects the global logger to w. It is mainly used by tests.
func SetOutput(w io.Writer) {
	level := globalLogger.level.Level()
	closeFile()
	globalLogger = newLogger(w, nil, level)
}

// SetFileOutput appends log output to the named file.
func SetFileOutput(filename string) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	level := globalLogger.level.Level()
	closeFile()
	globalLogger = newLogger(file, file, level)
	return nil
}

func closeFile() {
	if globalLogger != nil && globalLogger.file != nil {
		globalLogger.file.Close()
	}
}

func Debug(msg string, args ...any) {
	globalLogger.logger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	globalLogger.logger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	globalLogger.logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	globalLogger.logger.Error(msg, args...)
}

// Recovered logs a value returned by recover, with the current stack, and
// then closes the log file so the entry is flushed before the process exits.
func Recovered(r any) {
	Error("panic recovered", "error", r, "stack", string(debug.Stack()))
	closeFile()
}

// Close closes the log file, if one is open.
func Close() {
	closeFile()
}
