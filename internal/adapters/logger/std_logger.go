package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baditaflorin/go_mt_eval/internal/ports"
	"github.com/baditaflorin/l"
)

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a level name to a Level. Unknown names return LevelInfo and an error.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// StdLogger adapts the l.Logger to the ports.Logger interface and drops
// messages below its level.
type StdLogger struct {
	logger l.Logger
	level  Level
}

// Options configures NewCustomStdLogger.
type Options struct {
	Output     io.Writer
	JSONFormat bool
	Level      Level
}

// NewStdLogger creates a new standard logger adapter with default configuration.
func NewStdLogger() (*StdLogger, error) {
	return NewCustomStdLogger(Options{Output: os.Stdout, Level: LevelInfo})
}

// NewCustomStdLogger creates a new standard logger with custom configuration.
func NewCustomStdLogger(opts Options) (*StdLogger, error) {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      opts.Output,
		JsonFormat:  opts.JSONFormat,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &StdLogger{logger: logger, level: opts.Level}, nil
}

// FromExisting creates a new StdLogger from an existing l.Logger.
func FromExisting(logger l.Logger) *StdLogger {
	return &StdLogger{logger: logger, level: LevelDebug}
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	if s.level > LevelDebug {
		return
	}
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	if s.level > LevelInfo {
		return
	}
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	if s.level > LevelWarn {
		return
	}
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// NopLogger discards everything.
type NopLogger struct{}

// NewNopLogger returns a logger that writes nothing.
func NewNopLogger() ports.Logger {
	return NopLogger{}
}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
