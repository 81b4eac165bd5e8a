package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects to addr and pings it. RedisClient stays nil on failure.
func InitRedis(addr string) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     addr, // เช่น localhost:6379
		Password: "",
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := c.Ping(ctx).Result(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to connect Redis: %w", err)
	}

	RedisClient = c
	return c, nil
}
