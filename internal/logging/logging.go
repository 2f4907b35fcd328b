// Package logging configures the zap loggers used by hitprobe.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLoggerConfig returns a console config with colored levels, ISO8601
// timestamps and stacktraces disabled
func NewLoggerConfig() zap.Config {
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// NewLogger returns a named logger at info level
func NewLogger(name string) *zap.SugaredLogger {
	return build(NewLoggerConfig(), name)
}

// NewDebugLogger returns a named logger at debug level
func NewDebugLogger(name string) *zap.SugaredLogger {
	cfg := NewLoggerConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return build(cfg, name)
}

func build(cfg zap.Config, name string) *zap.SugaredLogger {
	logger, err := cfg.Build()
	if err != nil {
		// The config is static, so this only fails if stderr cannot be opened
		return zap.NewNop().Sugar()
	}
	return logger.Sugar().Named(name)
}
