package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

var (
	ErrLoggerInvalidLogLevel  = fmt.Errorf("invalid log level")
	ErrLoggerInvalidLogFormat = fmt.Errorf("invalid log format")
)

type options struct {
	w          io.Writer
	timeFormat string
	service    string
}

func WithWriter(w io.Writer) func(*options) {
	return func(o *options) {
		o.w = w
	}
}

// WithTimeFormat sets the time layout used by the tint handler.
func WithTimeFormat(layout string) func(*options) {
	return func(o *options) {
		o.timeFormat = layout
	}
}

func WithService(name string) func(*options) {
	return func(o *options) {
		o.service = name
	}
}

func NewLogger(logLevel, logFormat string, opts ...func(*options)) (*slog.Logger, error) {
	o := &options{
		w:          os.Stdout,
		timeFormat: time.DateTime,
	}
	for _, opt := range opts {
		opt(o)
	}

	slogLevel, err := getSlogLevel(logLevel)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	switch logFormat {
	case "json":
		handler = slog.NewJSONHandler(o.w, &slog.HandlerOptions{Level: slogLevel})
	case "text":
		handler = slog.NewTextHandler(o.w, &slog.HandlerOptions{Level: slogLevel})
	case "tint":
		handler = tint.NewHandler(o.w, &tint.Options{Level: slogLevel, TimeFormat: o.timeFormat})
	default:
		return nil, errors.Join(ErrLoggerInvalidLogFormat, fmt.Errorf("log format: %s", logFormat))
	}

	logger := slog.New(handler)
	if o.service != "" {
		logger = logger.With(slog.String("service", o.service))
	}

	return logger, nil
}

func getSlogLevel(logLevel string) (slog.Level, error) {
	switch logLevel {
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	}

	return slog.LevelInfo, errors.Join(ErrLoggerInvalidLogLevel, fmt.Errorf("log level: %s", logLevel))
}
