package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cascadefx/anim/cmd/animrunner/internal/config"
)

// newLogger builds a *zap.Logger from the script's [runner] section,
// following the same level/format branch the rest of the pack uses:
// "json" gets zap's production config, anything else a colorized
// development config tuned for a terminal.
func newLogger(cfg config.RunnerConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
