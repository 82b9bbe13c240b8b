package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

type Config struct {
	Level  Level
	Pretty bool
	Output io.Writer
}

// Logger is a thin facade over zerolog. Methods take alternating
// key/value pairs after the message.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger builds a logger; nil config means info-level console output
// to stdout.
func NewLogger(cfg *Config) *Logger {
	if cfg == nil {
		cfg = &Config{Level: InfoLevel, Pretty: true, Output: os.Stdout}
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	out := cfg.Output
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	return &Logger{
		zl: zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger(),
	}
}

// WithFields returns a logger that attaches the given fields to every line.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{zl: l.zl.With().Fields(fields).Logger()}
}

func (l *Logger) Debug(msg string, kv ...interface{}) {
	emit(l.zl.Debug(), msg, kv)
}

func (l *Logger) Info(msg string, kv ...interface{}) {
	emit(l.zl.Info(), msg, kv)
}

func (l *Logger) Warn(msg string, kv ...interface{}) {
	emit(l.zl.Warn(), msg, kv)
}

func (l *Logger) Error(err error, msg string, kv ...interface{}) {
	emit(l.zl.Error().Err(err), msg, kv)
}

func (l *Logger) Fatal(err error, msg string, kv ...interface{}) {
	emit(l.zl.Fatal().Err(err), msg, kv)
}

func emit(ev *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}
