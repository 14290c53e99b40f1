package cache

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL builds a redis client from a REDIS_URL style connection
// string and verifies it with a ping.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("invalid REDIS_URL, continuing without cache: %v", err)
		return nil
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable, continuing without cache: %v", err)
		return nil
	}
	return rdb
}

// Close closes the redis client if one was created.
func Close(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
