package database

import (
	"bodylover-backend/config"
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisClient stays nil when no redis host is configured; callers must check.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	_, err := RedisClient.Ping(Ctx).Result()
	return err
}
