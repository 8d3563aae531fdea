package cfgx

import "go.uber.org/zap"

// Logger represents debug logging behavior used to trace lookups.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
}

// NoopLogger represents logger which produce no output
type NoopLogger struct{}

func (NoopLogger) Debug(msg string, args ...any) {}

// ZapLogger adapts a zap logger to Logger.
type ZapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger builds new ZapLogger
func NewZapLogger(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{l: l.Sugar()}
}

// Debug logs msg with args treated as alternating keys and values.
func (z *ZapLogger) Debug(msg string, args ...any) {
	z.l.Debugw(msg, args...)
}
