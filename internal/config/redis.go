package config

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Redis   *redis.Client
	redisMu sync.Mutex
)

// ConnectRedis initializes the shared draft-store client (idempotent).
// It returns nil, nil when REDIS_ADDR is empty.
func ConnectRedis(env Env) (*redis.Client, error) {
	redisMu.Lock()
	defer redisMu.Unlock()

	if Redis != nil {
		return Redis, nil
	}
	addr := strings.TrimSpace(env.RedisAddr)
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     env.RedisPassword,
		DB:           env.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}

	Redis = client
	return Redis, nil
}

// PingRedis reports the health of the shared client; nil when not configured.
func PingRedis(ctx context.Context) error {
	redisMu.Lock()
	client := Redis
	redisMu.Unlock()

	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}

func CloseRedis() {
	redisMu.Lock()
	defer redisMu.Unlock()

	if Redis != nil {
		_ = Redis.Close()
		Redis = nil
	}
}

// RedisEnabled reports whether a shared client is connected.
func RedisEnabled() bool {
	redisMu.Lock()
	defer redisMu.Unlock()
	return Redis != nil
}
