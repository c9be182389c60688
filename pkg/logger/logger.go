// Package logger builds the zap logger described by settings.Logger.
package logger

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-tetris/pkg/settings"
)

// Logger is a zap logger that owns its output.
type Logger struct {
	*zap.Logger
	closer io.Closer
}

// New builds a logger at the configured level. With a file name set, entries
// are written as JSON to a size-rotated file; otherwise they go to stderr in
// console format.
func New(cfg settings.Logger, opts ...zap.Option) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	if cfg.FileLogName == "" {
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stderr), level)
		return &Logger{Logger: zap.New(core, opts...)}, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FileLogName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(rotator), level)
	return &Logger{Logger: zap.New(core, opts...), closer: rotator}, nil
}

// Close flushes buffered entries and releases the output file, if any.
func (l *Logger) Close() error {
	// Sync on a terminal stderr reports EINVAL on some platforms.
	_ = l.Sync()
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}
