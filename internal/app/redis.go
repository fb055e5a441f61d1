package app

import (
	"github.com/redis/go-redis/v9"
)

// InitRedis creates the redis client backing the sales feed cache.
// An empty addr disables caching; the feed then hits Discord on
// every request.
func (a *application) InitRedis() *redis.Client {
	if a.config.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     a.config.Redis.Addr,
		Password: a.config.Redis.Password,
		DB:       a.config.Redis.DB,
	})
}
