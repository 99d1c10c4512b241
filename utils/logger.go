package utils

import (
	"log"
	"sync"

	"trailhub/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// GetLogger returns the process-wide zap logger, building it on first use.
// Production gets JSON at info level, development gets colored console output
// at debug level.
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		var cfg zap.Config
		if config.IsProduction() {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		built, err := cfg.Build()
		if err != nil {
			log.Fatalf("failed to build logger: %v", err)
		}
		logger = built
	})
	return logger
}

// SyncLogger flushes buffered log entries. Called on shutdown.
func SyncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}
