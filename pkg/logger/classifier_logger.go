// Package logger is a thin structured-logging facade over zerolog. It keeps
// one process-wide default logger plus derived loggers carrying bound fields.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Level names accepted by Config.Level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config for logger initialization.
type Config struct {
	Level   string // debug, info, warn, error (default: info)
	Service string
	Output  io.Writer // default: os.Stdout
}

// Logger wraps a zerolog.Logger with bound fields.
type Logger struct {
	zl zerolog.Logger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// ParseLevel maps a level string to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "warn", "WARN", "warning", "WARNING":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	case "fatal", "FATAL":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init initializes the default logger. Safe to call more than once; only the
// first call takes effect.
func Init(cfg Config) {
	once.Do(func() {
		defaultLogger = New(cfg)
	})
}

// New creates an independent logger instance.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}
	service := cfg.Service
	if service == "" {
		service = "classifier"
	}

	zl := zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	return &Logger{zl: zl}
}

// Default returns the default logger, initializing it lazily if needed.
func Default() *Logger {
	if defaultLogger == nil {
		Init(Config{})
	}
	return defaultLogger
}

// WithField returns a logger with an additional bound field.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithFields returns a logger with additional bound fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{zl: ctx.Logger()}
}

// WithError binds error information. A nil error is a no-op.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return &Logger{zl: l.zl.With().Str("error", err.Error()).Logger()}
}

func (l *Logger) Debug(format string, args ...any) { l.zl.Debug().Msgf(format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.zl.Info().Msgf(format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.zl.Warn().Msgf(format, args...) }
func (l *Logger) Error(format string, args ...any) { l.zl.Error().Msgf(format, args...) }
func (l *Logger) Fatal(format string, args ...any) { l.zl.Fatal().Msgf(format, args...) }

// Package-level helpers delegating to the default logger.

func WithField(key string, value any) *Logger  { return Default().WithField(key, value) }
func WithFields(fields map[string]any) *Logger { return Default().WithFields(fields) }
func WithError(err error) *Logger              { return Default().WithError(err) }
func Debug(format string, args ...any)         { Default().Debug(format, args...) }
func Info(format string, args ...any)          { Default().Info(format, args...) }
func Warn(format string, args ...any)          { Default().Warn(format, args...) }
func Error(format string, args ...any)         { Default().Error(format, args...) }
func Fatal(format string, args ...any)         { Default().Fatal(format, args...) }
