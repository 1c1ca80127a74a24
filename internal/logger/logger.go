package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/selmane/retailpos/config"
)

// New builds a zap logger from the app config. Console encoding gives the
// development setup, anything else falls back to production JSON.
func New(cfg *config.LoggerConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Encoding == "console" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableCaller = cfg.DisableCaller
	zcfg.DisableStacktrace = cfg.DisableStacktrace

	return zcfg.Build()
}
