package service

import (
	"context"
	"testing"

	"github.com/beka-birhanu/maze-engine/domain"
	"github.com/beka-birhanu/maze-engine/maze"
	"github.com/beka-birhanu/maze-engine/service/i"
	"github.com/beka-birhanu/maze-engine/solver"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory i.MazeRepo.
type memRepo struct {
	records map[uuid.UUID]*domain.MazeRecord
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[uuid.UUID]*domain.MazeRecord)}
}

func (r *memRepo) Save(_ context.Context, record *domain.MazeRecord) error {
	r.records[record.ID] = record
	return nil
}

func (r *memRepo) ByID(_ context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, i.ErrMazeNotFound
	}
	return record, nil
}

// memCache is an in-memory i.MazeCache counting lock acquisitions.
type memCache struct {
	data  map[string][]byte
	locks int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := c.data[key]
	if !ok {
		return nil, i.ErrCacheMiss
	}
	return value, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte) error {
	c.data[key] = value
	return nil
}

func (c *memCache) Lock(context.Context, string) (func() error, error) {
	c.locks++
	return func() error { return nil }, nil
}

func newTestService(t *testing.T) (*MazeService, *memRepo, *memCache) {
	t.Helper()

	repo := newMemRepo()
	cache := newMemCache()
	svc, err := NewMazeService(Config{Repo: repo, Cache: cache, MaxDimension: 32})
	require.NoError(t, err)
	return svc, repo, cache
}

func TestCreatePersistsAndCaches(t *testing.T) {
	svc, repo, cache := newTestService(t)

	record, err := svc.Create(context.Background(), 6, 5, "")
	require.NoError(t, err)

	assert.Equal(t, 6, record.Width)
	assert.Equal(t, 5, record.Height)
	assert.Equal(t, AlgorithmWilson, record.Algorithm)
	assert.Contains(t, repo.records, record.ID)
	assert.Contains(t, cache.data, encodedKey(record.ID))

	m, err := maze.Decode(record.Encoded)
	require.NoError(t, err)
	width, height := m.Bounds()
	assert.Equal(t, 6, width)
	assert.Equal(t, 5, height)
}

func TestCreateWithRandomDFS(t *testing.T) {
	svc, _, _ := newTestService(t)

	record, err := svc.Create(context.Background(), 4, 4, AlgorithmRandomDFS)
	require.NoError(t, err)
	assert.Equal(t, AlgorithmRandomDFS, record.Algorithm)
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 0, 5, "")
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = svc.Create(ctx, 5, 33, "")
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = svc.Create(ctx, 5, 5, "prim")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestEncodedFallsBackToRepo(t *testing.T) {
	svc, _, cache := newTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, 4, 4, "")
	require.NoError(t, err)

	// Drop the cache entry; the repo must still serve and backfill it.
	delete(cache.data, encodedKey(record.ID))

	encoded, err := svc.Encoded(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Encoded, encoded)
	assert.Contains(t, cache.data, encodedKey(record.ID))
}

func TestSolveReturnsPathAndTrace(t *testing.T) {
	svc, _, cache := newTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, 6, 6, "")
	require.NoError(t, err)

	path, trace, err := svc.Solve(ctx, record.ID, "bfs")
	require.NoError(t, err)

	require.NotEmpty(t, path)
	assert.Equal(t, maze.Position{X: 0, Y: 0}, path[0])
	assert.Equal(t, maze.Position{X: 5, Y: 5}, path[len(path)-1])
	assert.Len(t, trace, len(path)-1)
	assert.Contains(t, cache.data, traceKey(record.ID, solver.BFS))
	assert.Positive(t, cache.locks)
}

func TestSolveServesCachedTrace(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, 5, 5, "")
	require.NoError(t, err)

	first, firstTrace, err := svc.Solve(ctx, record.ID, "a-star")
	require.NoError(t, err)

	second, secondTrace, err := svc.Solve(ctx, record.ID, "a-star")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTrace, secondTrace)
}

func TestSolveUnknownAlgorithm(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Solve(context.Background(), uuid.New(), "dijkstra")
	assert.ErrorIs(t, err, solver.ErrUnknownKind)
}

func TestSolveMissingMaze(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Solve(context.Background(), uuid.New(), "bfs")
	assert.ErrorIs(t, err, i.ErrMazeNotFound)
}

func TestSolveUnsolvableMaze(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	// Two disconnected corridors: (0,0)-(1,0) and (0,1)-(1,1).
	m, err := maze.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Carve(0, 0, maze.Right))
	require.NoError(t, m.Carve(0, 1, maze.Right))

	encoded, err := maze.Encode(m)
	require.NoError(t, err)

	record := &domain.MazeRecord{ID: uuid.New(), Width: 2, Height: 2, Encoded: encoded}
	require.NoError(t, repo.Save(ctx, record))

	_, _, err = svc.Solve(ctx, record.ID, "bfs")
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestAsciiRendersStoredMaze(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	record, err := svc.Create(ctx, 3, 3, "")
	require.NoError(t, err)

	rendered, err := svc.Ascii(ctx, record.ID)
	require.NoError(t, err)
	assert.Contains(t, rendered, "+---+")
}
