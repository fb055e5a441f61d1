package app

import (
	"github.com/sweepscout/tracker/internal/config"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
