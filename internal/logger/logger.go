package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is our abstract logging interface.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Error(err error)
	WithFields(fields map[string]any) Logger
}

// LogrusLogger implements Logger using logrus.
type LogrusLogger struct {
	entry *logrus.Entry
	file  *os.File
}

// NewLogrusLogger creates a logrus logger writing to stderr and, when
// filepath is set, appending to that file as well. Stdout is left to the report.
func NewLogrusLogger(filepath, level string) (*LogrusLogger, error) {
	return NewLogrusLoggerTo(os.Stderr, filepath, level)
}

// NewLogrusLoggerTo is NewLogrusLogger with console output going to w.
// The caller closes the returned logger to release the log file.
func NewLogrusLoggerTo(w io.Writer, filepath, level string) (*LogrusLogger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if filepath == "" {
		return newLogger(w, lvl), nil
	}

	file, err := os.OpenFile(filepath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l := newLogger(io.MultiWriter(w, file), lvl)
	l.file = file
	return l, nil
}

func newLogger(out io.Writer, lvl logrus.Level) *LogrusLogger {
	baseLogger := logrus.New()
	baseLogger.SetOutput(out)
	baseLogger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})
	baseLogger.SetLevel(lvl)

	return &LogrusLogger{
		entry: logrus.NewEntry(baseLogger),
	}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return newLogger(io.Discard, logrus.PanicLevel)
}

// Close releases the log file, if any. Loggers derived through WithFields
// share the file and must not be used afterwards.
func (l *LogrusLogger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *LogrusLogger) Debug(msg string) {
	l.entry.Debug(msg)
}

func (l *LogrusLogger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *LogrusLogger) Error(err error) {
	l.entry.Error(err)
}

func (l *LogrusLogger) WithFields(fields map[string]any) Logger {
	return &LogrusLogger{
		entry: l.entry.WithFields(logrus.Fields(fields)),
	}
}
