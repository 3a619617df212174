package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "condiments-api"

// New builds the process logger. At debug level output is the console
// encoder; any other level switches to JSON lines for log shippers.
// An unparsable level falls back to debug and is reported once.
func New(levelEnv string) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	badLevel := false
	if levelEnv != "" {
		if err := level.UnmarshalText([]byte(levelEnv)); err != nil {
			level.SetLevel(zap.DebugLevel)
			badLevel = true
		}
	}

	cfg := zap.NewProductionConfig()
	if level.Level() == zap.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = level
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(zap.String("service", serviceName)),
	)
	if err != nil {
		return nil, err
	}
	if badLevel {
		l.Warn("bad LOG_LEVEL, fallback to debug", zap.String("value", levelEnv))
	}
	return l, nil
}

func Must(levelEnv string) *zap.Logger {
	l, err := New(levelEnv)
	if err != nil {
		panic(err)
	}
	return l
}
