package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func redisKey(visitorID, key string) string {
	return "visitor:" + visitorID + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, visitorID, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, redisKey(visitorID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *RedisStore) Set(ctx context.Context, visitorID, key string, value []byte) error {
	return s.rdb.Set(ctx, redisKey(visitorID, key), value, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, visitorID, key string) error {
	return s.rdb.Del(ctx, redisKey(visitorID, key)).Err()
}

func (s *RedisStore) Close(context.Context) error {
	return s.rdb.Close()
}
