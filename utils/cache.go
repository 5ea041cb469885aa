package utils

import (
	"context"
	"log"
	"time"

	"artisanhub/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCachePrefix namespaces auth-token hashes in Redis.
const AuthCachePrefix = "auth:"

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// RevokeToken records the token hash in the auth cache so the token is
// rejected until it would have expired anyway.
func RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	return GetAuthCacheClient().Set(ctx, AuthCachePrefix+HashToken(token), "revoked", ttl).Err()
}

// IsTokenRevoked reports whether the token hash is on the revocation list.
// Redis errors are treated as not revoked.
func IsTokenRevoked(ctx context.Context, token string) bool {
	n, err := GetAuthCacheClient().Exists(ctx, AuthCachePrefix+HashToken(token)).Result()
	if err != nil {
		GetLogger().Warn("auth cache lookup failed", zap.Error(err))
		return false
	}
	return n > 0
}
