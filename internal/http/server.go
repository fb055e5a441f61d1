package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sweepscout/tracker/internal/config"
	"github.com/sweepscout/tracker/internal/http/handlers"
	"github.com/sweepscout/tracker/internal/http/middleware"
	"github.com/sweepscout/tracker/internal/infrastructure/auth"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router             *gin.Engine
	jwtService         auth.JWTService
	userHandler        *handlers.UserHandler
	trackerHandler     *handlers.TrackerHandler
	catalogHandler     *handlers.CatalogHandler
	leaderboardHandler *handlers.LeaderboardHandler
	discordHandler     *handlers.DiscordHandler
	errorHandler       *middleware.ErrorHandler
	addr               string
}

// NewServer creates a new HTTP server
func NewServer(
	cfg *config.Config,
	jwtService auth.JWTService,
	userHandler *handlers.UserHandler,
	trackerHandler *handlers.TrackerHandler,
	catalogHandler *handlers.CatalogHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	discordHandler *handlers.DiscordHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(cors.New(corsConfig))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:             router,
		jwtService:         jwtService,
		userHandler:        userHandler,
		trackerHandler:     trackerHandler,
		catalogHandler:     catalogHandler,
		leaderboardHandler: leaderboardHandler,
		discordHandler:     discordHandler,
		errorHandler:       errorHandler,
		addr:               cfg.GetServerAddress(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signin", s.userHandler.SignIn)
		}

		casinoRoutes := v1.Group("/casinos")
		{
			casinoRoutes.GET("", s.catalogHandler.ListCasinos)
			casinoRoutes.GET("/:slug", s.catalogHandler.GetCasino)
		}

		v1.GET("/leaderboard", s.leaderboardHandler.GetLeaderboard)
		v1.GET("/discord/sales", s.discordHandler.GetSales)
		v1.GET("/discord/free-sc", s.discordHandler.GetFreeSc)

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("/me", s.userHandler.GetUserInfo)
			}

			myRoutes := protected.Group("/my")
			{
				myRoutes.GET("/casinos", s.trackerHandler.List)
				myRoutes.POST("/casinos", s.trackerHandler.Save)
				myRoutes.DELETE("/casinos", s.trackerHandler.Unsave)
				myRoutes.PUT("/casinos", s.trackerHandler.UpdateAmounts)
				myRoutes.PATCH("/casinos", s.trackerHandler.RecordVisit)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.router.Run(s.addr)
}
