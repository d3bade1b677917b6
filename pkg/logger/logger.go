package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Logger struct {
	base  zerolog.Logger
	info  *zerolog.Logger
	warn  *zerolog.Logger
	error *zerolog.Logger
}

// New builds a JSON logger on stdout. LOG_LEVEL selects the minimum level.
func New() *Logger {
	return NewWithWriter(os.Stdout, os.Getenv("LOG_LEVEL"))
}

func NewWithWriter(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	base := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return wrap(base)
}

func wrap(base zerolog.Logger) *Logger {
	info := base.With().Logger()
	warn := base.With().Logger()
	errLog := base.With().Caller().Logger()
	return &Logger{base: base, info: &info, warn: &warn, error: &errLog}
}

// With returns a child logger that stamps key=value on every entry.
func (l *Logger) With(key string, value interface{}) *Logger {
	return wrap(l.base.With().Interface(key, value).Logger())
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.info.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.warn.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.error.Error().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.base.Debug().Msg(fmt.Sprintf(format, args...))
}
