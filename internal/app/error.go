package app

import (
	"github.com/sweepscout/tracker/internal/http/middleware"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
