package logger

import (
	"log/slog"
	"os"

	ports "pr-webhook-service/internal/domain/ports/output"
)

type Logger struct {
	l *slog.Logger
}

// New builds a logger for the given environment: text at debug level
// for dev, JSON at info level otherwise.
func New(env string) *Logger {
	var handler slog.Handler
	switch env {
	case "dev", "test":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{l: slog.New(handler)}
}

func (lg *Logger) Info(msg string, args ...any)  { lg.l.Info(msg, args...) }
func (lg *Logger) Debug(msg string, args ...any) { lg.l.Debug(msg, args...) }
func (lg *Logger) Warn(msg string, args ...any)  { lg.l.Warn(msg, args...) }
func (lg *Logger) Error(msg string, args ...any) { lg.l.Error(msg, args...) }

func (lg *Logger) With(args ...any) ports.Logger {
	return &Logger{l: lg.l.With(args...)}
}
