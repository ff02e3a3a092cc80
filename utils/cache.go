// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"labline/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient backs the conversation session store.
	SessionCacheClient *redis.Client
	// QueueCacheClient is the dedicated client for the task queue health checks.
	QueueCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client backing conversation sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitQueueCache initializes the Redis client for the follow-up task queue DB.
func InitQueueCache() {
	QueueCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := QueueCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Queue): %v", err)
	}
}

// GetQueueCacheClient returns the Redis client for the task queue DB.
func GetQueueCacheClient() *redis.Client {
	if QueueCacheClient == nil {
		InitQueueCache()
	}
	return QueueCacheClient
}
