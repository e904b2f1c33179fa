// Package logging adapts zap to the query.Logger interface.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fivetwenty-io/erpquery/pkg/query"
)

// Logger implements query.Logger on top of a zap.Logger.
type Logger struct {
	zl *zap.Logger
}

var _ query.Logger = (*Logger)(nil)

// New wraps an existing zap logger. A nil logger discards output.
func New(zl *zap.Logger) *Logger {
	if zl == nil {
		zl = zap.NewNop()
	}

	return &Logger{zl: zl}
}

// NewCLI builds the logger used by the erpquery command. Verbose mode logs at
// debug level in console format to stderr; otherwise only errors are logged.
func NewCLI(verbose bool) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose

	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	}

	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return New(zl), nil
}

// Zap returns the underlying zap logger.
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.zl.Debug(msg, toZap(fields)...)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.zl.Info(msg, toZap(fields)...)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.zl.Warn(msg, toZap(fields)...)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.zl.Error(msg, toZap(fields)...)
}

func toZap(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}

	return out
}
