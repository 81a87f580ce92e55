package redis

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

const defaultTTL = time.Hour

/*
* Read REDIS_ADDR from the environment
* When unset the cache stays disabled and every helper no-ops
 */
func Connect() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, cache disabled")
		return
	}
	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := Rdb.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis unreachable, cache disabled:", err)
		Rdb = nil
		return
	}
	log.Println("Redis connection established")
}

func Enabled() bool {
	return Rdb != nil
}

func SetCache(ctx context.Context, key string, value interface{}) error {
	return SetCacheTTL(ctx, key, value, defaultTTL)
}

func SetCacheTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if Rdb == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Rdb.Set(ctx, key, raw, ttl).Err()
}

/*
* Fetch and unmarshal into dest
* Returns false on a miss or when the cache is disabled
 */
func GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	if Rdb == nil {
		return false, nil
	}
	raw, err := Rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func DeleteCache(ctx context.Context, key string) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Del(ctx, key).Err()
}
