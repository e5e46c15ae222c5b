package redis

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const revokedKeyPrefix = "revoked:"

// Init connects to the Redis instance at REDIS_ADDR. Redis only backs the
// token revocation list, so when the variable is unset the server runs
// without it and logout becomes a no-op.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, token revocation disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis: %v, token revocation disabled", err)
		return
	}

	Client = client
	log.Println("✅ Connected to Redis")
}

// RevokeToken blacklists a token's jti until the token would have expired.
func RevokeToken(jti string, ttl time.Duration) error {
	if Client == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token's jti has been blacklisted.
func IsTokenRevoked(jti string) bool {
	if Client == nil || jti == "" {
		return false
	}
	n, err := Client.Exists(Ctx, revokedKeyPrefix+jti).Result()
	return err == nil && n > 0
}
