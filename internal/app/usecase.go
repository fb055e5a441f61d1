package app

import (
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/infrastructure/auth"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
	"github.com/sweepscout/tracker/internal/usecase/catalog"
	"github.com/sweepscout/tracker/internal/usecase/leaderboard"
	"github.com/sweepscout/tracker/internal/usecase/tracker"
	"github.com/sweepscout/tracker/internal/usecase/user"
)

func (a *application) InitUserUseCase(
	ur domain.UserRepository,
	idp domain.IdentityProvider,
	jwt auth.JWTService,
	log *logger.Logger,
) domain.UserUseCase {
	return user.NewUserUseCase(ur, idp, jwt, log)
}

func (a *application) InitTrackerUseCase(
	sr domain.SavedCasinoRepository,
	ur domain.UserRepository,
	cat domain.CasinoCatalog,
	log *logger.Logger,
) domain.TrackerUseCase {
	return tracker.NewTrackerUseCase(sr, ur, cat, log)
}

func (a *application) InitLeaderboardUseCase(ur domain.UserRepository, log *logger.Logger) domain.LeaderboardUseCase {
	return leaderboard.NewLeaderboardUseCase(ur, log)
}

func (a *application) InitCatalogUseCase(cat domain.CasinoCatalog) *catalog.CatalogUseCase {
	return catalog.NewCatalogUseCase(cat)
}
