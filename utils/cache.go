package utils

import (
	"context"
	"log"
	"time"

	"slotswapper/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces auth-token hashes in redis.
const AuthCachePrefix = "auth:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

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

// StoreAuthTokenHash caches the hash of a freshly issued token.
func StoreAuthTokenHash(ctx context.Context, userID, tokenHash string, ttl time.Duration) error {
	return GetAuthCacheClient().Set(ctx, AuthCachePrefix+userID, tokenHash, ttl).Err()
}

// GetAuthTokenHash retrieves the cached token hash for a user. Returns
// redis.Nil when no token is cached.
func GetAuthTokenHash(ctx context.Context, userID string) (string, error) {
	return GetAuthCacheClient().Get(ctx, AuthCachePrefix+userID).Result()
}

// DeleteAuthTokenHash revokes the cached token for a user.
func DeleteAuthTokenHash(ctx context.Context, userID string) error {
	return GetAuthCacheClient().Del(ctx, AuthCachePrefix+userID).Err()
}
