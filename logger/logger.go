package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

var DefaultLogger = New(Options{os.Stdout, DefaultLevel, TypeText})

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	if opts.Buffer == nil {
		opts.Buffer = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: levels[opts.Level]}

	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Buffer, handlerOpts)
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Buffer, handlerOpts)
	}
	return &logger{
		Logger: slog.New(handler),
	}
}

// Debugf formats according to format and logs the result at debug level.
// A nil logger falls back to DefaultLogger.
func Debugf(l Logger, format string, args ...any) {
	if l == nil {
		l = DefaultLogger
	}
	l.Debug(fmt.Sprintf(format, args...))
}
