package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger constructs a zap logger configured for human-readable console output.
// Timestamps, levels, and caller annotations are suppressed so fatal messages
// read like plain diagnostics.
func NewApplicationLogger() (*zap.Logger, error) {
	loggerConfiguration := zap.NewProductionConfig()
	loggerConfiguration.Encoding = "console"
	loggerConfiguration.DisableCaller = true
	loggerConfiguration.DisableStacktrace = true
	loggerConfiguration.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	loggerConfiguration.EncoderConfig.TimeKey = EmptyString
	loggerConfiguration.EncoderConfig.LevelKey = EmptyString
	loggerConfiguration.EncoderConfig.NameKey = EmptyString
	loggerConfiguration.EncoderConfig.CallerKey = EmptyString
	loggerConfiguration.EncoderConfig.MessageKey = "message"
	loggerConfiguration.EncoderConfig.StacktraceKey = EmptyString
	return loggerConfiguration.Build()
}
