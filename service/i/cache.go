package i

import (
	"context"
	"errors"
)

// ErrCacheMiss reports a key with no cached value.
var ErrCacheMiss = errors.New("cache miss")

// MazeCache is a shared byte cache with named locks. The maze service keeps
// encoded mazes and solution traces in it so repeated reads and solves skip
// the repository and the solvers.
type MazeCache interface {
	// Get returns the cached bytes for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key with the cache's TTL.
	Set(ctx context.Context, key string, value []byte) error

	// Lock acquires the named mutex and returns the matching release
	// function.
	Lock(ctx context.Context, name string) (func() error, error)
}
