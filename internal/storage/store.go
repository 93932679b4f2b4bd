package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/nachofazah/Ciu-RedSocial/bootstrap"
	"github.com/nachofazah/Ciu-RedSocial/config"
	"github.com/nachofazah/Ciu-RedSocial/database"
)

var ErrNotFound = errors.New("storage: key not found")

// Store keeps small per-visitor blobs, like the logged-in user or the theme.
// Implementations are safe for concurrent use.
type Store interface {
	Get(ctx context.Context, visitorID, key string) ([]byte, error)
	Set(ctx context.Context, visitorID, key string, value []byte) error
	Delete(ctx context.Context, visitorID, key string) error
	Close(ctx context.Context) error
}

const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
	DriverRedis  = "redis"
)

// Open builds the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config, log *logrus.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case "", DriverMemory:
		log.Info("visitor store: memory")
		return NewMemoryStore(cfg.VisitorTTL), nil

	case DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDB)
		if err := bootstrap.EnsureVisitorIndexes(ctx, db, cfg.VisitorTTL); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("ensure visitor indexes: %w", err)
		}
		log.WithField("db", cfg.MongoDB).Info("visitor store: mongo")
		return NewMongoStore(client, db.Collection(bootstrap.VisitorStateCollection)), nil

	case DriverRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: 0})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		log.WithField("addr", cfg.RedisAddr).Info("visitor store: redis")
		return NewRedisStore(rdb, cfg.VisitorTTL), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
