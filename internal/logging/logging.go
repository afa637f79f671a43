// Package logging builds the zap logger svgdeck writes diagnostics to. The
// terminal belongs to the presentation, so logs only go to a file.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeFormat = "2006-01-02T15:04:05.000"

// Logger wraps a zap logger together with the file it writes to.
type Logger struct {
	*zap.Logger
	file *os.File
	held *bytes.Buffer
}

// New opens path for appending and returns a console-encoded logger at the
// given level. With an empty path, warnings and errors are held in memory
// until Replay and everything else is dropped.
func New(path, level string) (*Logger, error) {
	if path == "" {
		held := &bytes.Buffer{}
		ec := encoderConfig()
		ec.TimeKey = ""
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(held)), zapcore.WarnLevel)
		return &Logger{Logger: zap.New(core), held: held}, nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(f), lvl)
	return &Logger{Logger: zap.New(core), file: f}, nil
}

// NewConsole returns a logger writing to w without timestamps, for
// commands that do not take over the terminal.
func NewConsole(w io.Writer, level zapcore.Level) *Logger {
	ec := encoderConfig()
	ec.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.AddSync(w), level)
	return &Logger{Logger: zap.New(core)}
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeFormat)
	ec.EncodeDuration = zapcore.StringDurationEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return ec
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Replay writes the entries held by a file-less logger to w. Call it once
// the terminal is released.
func (l *Logger) Replay(w io.Writer) error {
	if l.held == nil || l.held.Len() == 0 {
		return nil
	}
	_, err := l.held.WriteTo(w)
	return err
}

// Since is a small helper for timing fields.
func Since(start time.Time) zap.Field {
	return zap.Duration("elapsed", time.Since(start))
}
