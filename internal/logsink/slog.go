package logsink

import "log/slog"

// Slog adapts a structured slog.Logger to the Sink contract, for embedding
// systems that already route diagnostics through log/slog.
type Slog struct {
	l         *slog.Logger
	threshold Level
}

// NewSlog wraps l. A nil logger falls back to slog.Default.
func NewSlog(l *slog.Logger, threshold Level) *Slog {
	if l == nil {
		l = slog.Default()
	}
	return &Slog{l: l, threshold: threshold}
}

func (s *Slog) Enabled(level Level) bool {
	return level <= s.threshold
}

func (s *Slog) Emit(level Level, msg string) {
	if !s.Enabled(level) {
		return
	}
	switch level {
	case LevelError:
		s.l.Error(msg)
	case LevelWarning:
		s.l.Warn(msg)
	case LevelInfo:
		s.l.Info(msg)
	default:
		s.l.Debug(msg)
	}
}
