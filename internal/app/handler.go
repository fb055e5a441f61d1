package app

import (
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/http/handlers"
	"github.com/sweepscout/tracker/internal/usecase/catalog"
)

func (a *application) InitUserHandler(uc domain.UserUseCase) *handlers.UserHandler {
	return handlers.NewUserHandler(uc)
}

func (a *application) InitTrackerHandler(tc domain.TrackerUseCase, cat domain.CasinoCatalog) *handlers.TrackerHandler {
	return handlers.NewTrackerHandler(tc, cat)
}

func (a *application) InitCatalogHandler(cc *catalog.CatalogUseCase) *handlers.CatalogHandler {
	return handlers.NewCatalogHandler(cc)
}

func (a *application) InitLeaderboardHandler(lc domain.LeaderboardUseCase) *handlers.LeaderboardHandler {
	return handlers.NewLeaderboardHandler(lc)
}

func (a *application) InitDiscordHandler(ds domain.DiscordService) *handlers.DiscordHandler {
	return handlers.NewDiscordHandler(ds)
}
