package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/sweepscout/tracker/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting SweepScout Tracker Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitRedis,
			a.InitCatalog,
			a.InitJWTService,
			a.InitIdentityProvider,
			a.InitDiscordService,
			a.InitRepository,
			a.InitUserUseCase,
			a.InitTrackerUseCase,
			a.InitLeaderboardUseCase,
			a.InitCatalogUseCase,
			a.InitUserHandler,
			a.InitTrackerHandler,
			a.InitCatalogHandler,
			a.InitLeaderboardHandler,
			a.InitDiscordHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.RunHTTPServer),
	)

	app.Run()
}
