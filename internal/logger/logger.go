package logger

import (
	"log"

	"go.uber.org/zap"
)

var logger *zap.Logger

// Init sets up the global structured logger. Must be called once at startup
// before any other package logs.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger = l
}

// Sync flushes buffered log entries. Call via defer in main.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}
