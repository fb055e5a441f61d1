package app

import (
	"github.com/sweepscout/tracker/internal/http"
	"github.com/sweepscout/tracker/internal/http/handlers"
	"github.com/sweepscout/tracker/internal/http/middleware"
	"github.com/sweepscout/tracker/internal/infrastructure/auth"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	userHandler *handlers.UserHandler,
	trackerHandler *handlers.TrackerHandler,
	catalogHandler *handlers.CatalogHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	discordHandler *handlers.DiscordHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	if a.config.Server.Port == "" {
		a.config.Server.Port = "8080" // default port
	}

	return http.NewServer(
		a.config,
		jwtService,
		userHandler,
		trackerHandler,
		catalogHandler,
		leaderboardHandler,
		discordHandler,
		errorHandler,
		log,
	)
}

// RunHTTPServer starts the HTTP listener
func (a *application) RunHTTPServer(server *http.Server, log *logger.Logger) {
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("http server stopped")
		}
	}()
}
