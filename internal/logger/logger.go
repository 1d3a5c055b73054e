package logger

import (
	"arena_backend/internal/config"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New собирает zap логгер: json в stdout и, если задан файл, в ротируемый лог
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level())
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", cfg.Level())
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}
	if cfg.File() != "" {
		rotate := &lumberjack.Logger{
			Filename:   cfg.File(),
			MaxSize:    cfg.MaxSizeMB(),
			MaxBackups: cfg.MaxBackups(),
			MaxAge:     cfg.MaxAgeDays(),
			LocalTime:  true,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotate), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
