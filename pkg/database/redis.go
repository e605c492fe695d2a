package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"lingua_edu_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis connects the cache client used for progress summaries. The
// startup ping is bounded so a missing Redis fails fast instead of
// hanging the boot sequence.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Println("Redis connection established")
	return rdb, nil
}
