package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	base  *zap.Logger
	sugar *zap.SugaredLogger
	debug bool
)

func init() {
	Setup(os.Getenv("ENVIRONMENT"))
}

// Setup rebuilds the process logger for the given environment. Production
// gets JSON output at info level, anything else a console encoder at debug.
func Setup(environment string) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}

	mu.Lock()
	defer mu.Unlock()
	base = l
	sugar = l.Sugar()
	debug = environment != "production"
}

// Zap exposes the structured logger for components that log fields.
func Zap() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.WithOptions(zap.AddCallerSkip(-1))
}

func Info(format string, v ...interface{}) {
	current().Infof(format, v...)
}

func Error(format string, v ...interface{}) {
	current().Errorf(format, v...)
}

func Debug(format string, v ...interface{}) {
	mu.RLock()
	enabled := debug
	mu.RUnlock()
	if enabled {
		current().Debugf(format, v...)
	}
}

func Warn(format string, v ...interface{}) {
	current().Warnf(format, v...)
}

func Fatal(format string, v ...interface{}) {
	current().Fatalf(format, v...)
}

func Sync() {
	_ = current().Sync()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}
