package fdspace

import "go.uber.org/zap"

// Logger wraps a *zap.Logger with nil-receiver safety, mirroring the
// teacher's nil-safe *SolverMonitor methods (fd_monitor.go): a zero
// value Logger is silent rather than panicking, so PropagationEngine
// and SearchEngine can embed one unconditionally and callers only pay
// for logging when they opt in.
type Logger struct {
	z *zap.Logger
}

// NewLogger wraps z. Passing nil yields a silent Logger.
func NewLogger(z *zap.Logger) Logger {
	return Logger{z: z}
}

// NopLogger returns a Logger that discards everything, the default
// used when no logger is supplied.
func NopLogger() Logger {
	return Logger{}
}

func (l Logger) Debug(msg string, fields ...zap.Field) {
	if l.z != nil {
		l.z.Debug(msg, fields...)
	}
}

func (l Logger) Info(msg string, fields ...zap.Field) {
	if l.z != nil {
		l.z.Info(msg, fields...)
	}
}
