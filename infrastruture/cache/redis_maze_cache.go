// Package cache backs the maze cache with Redis: encoded mazes and solution
// traces under TTL'd keys, plus redsync named mutexes for solve stampede
// control.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/maze-engine/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 24 * time.Hour

// RedisMazeCache implements i.MazeCache over a Redis client.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache creates a cache with the given TTL; ttl <= 0 falls back
// to the default.
func NewRedisMazeCache(client *redis.Client, ttl time.Duration) *RedisMazeCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &RedisMazeCache{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    ttl,
	}
}

// Get returns the cached bytes for key, or i.ErrCacheMiss.
func (c *RedisMazeCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, i.ErrCacheMiss
	}
	return value, err
}

// Set stores value under key with the cache TTL.
func (c *RedisMazeCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// Lock acquires the named redsync mutex and returns its release function.
func (c *RedisMazeCache) Lock(ctx context.Context, name string) (func() error, error) {
	mutex := c.locker.NewMutex(name + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() error {
		ok, err := mutex.UnlockContext(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("lock was already released")
		}
		return nil
	}, nil
}
