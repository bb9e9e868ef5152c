package config

import (
	"log"
	"os"
	"strings"

	"github.com/go-redis/redis/v8"
)

// ConnectCache builds the redis client for the reference-data cache. Caching
// is optional: with REDIS_URL unset the service runs without it.
func ConnectCache() *redis.Client {
	addr := strings.TrimSpace(os.Getenv("REDIS_URL"))
	if addr == "" {
		log.Println("⚠️  REDIS_URL not set; catalog caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	log.Println("✅ Redis cache configured at", addr)
	return client
}
