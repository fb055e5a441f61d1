package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/sweepscout/tracker/internal/domain"
	"github.com/sweepscout/tracker/internal/infrastructure/external/discord"
	"github.com/sweepscout/tracker/internal/infrastructure/external/identity"
	"github.com/sweepscout/tracker/internal/infrastructure/logger"
)

func (a *application) InitIdentityProvider() domain.IdentityProvider {
	return identity.NewIdentityProvider(&a.config.OAuth)
}

func (a *application) InitDiscordService(rdb *redis.Client, log *logger.Logger) domain.DiscordService {
	return discord.NewDiscordService(&a.config.Discord, rdb, log)
}
