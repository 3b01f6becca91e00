// Package service orchestrates the maze engine behind the API: generation,
// retrieval, solving and operator authentication.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-engine/domain"
	"github.com/beka-birhanu/maze-engine/generator"
	"github.com/beka-birhanu/maze-engine/maze"
	"github.com/beka-birhanu/maze-engine/service/i"
	"github.com/beka-birhanu/maze-engine/solver"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// AlgorithmWilson and AlgorithmRandomDFS name the generation algorithms
	// on the wire.
	AlgorithmWilson    = "wilson"
	AlgorithmRandomDFS = "random-dfs"

	defaultMaxDimension = 256
)

var (
	// ErrInvalidDimensions reports maze dimensions outside the accepted range.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")

	// ErrUnknownAlgorithm reports a generation algorithm outside the fixed set.
	ErrUnknownAlgorithm = errors.New("unknown generation algorithm")

	// ErrUnsolvable reports a stored maze whose far corner cannot be reached
	// from the start. Generated mazes are spanning trees and never trigger
	// it; hand-encoded ones can.
	ErrUnsolvable = errors.New("maze is not solvable")
)

// MazeService generates, stores and solves mazes. It is the run-to-completion
// driver of the step-driven engine; the live websocket endpoint is the paced
// one.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.MazeCache
	maxDimension int
	logger       *logrus.Entry
}

// Config holds the dependencies and settings of a MazeService.
type Config struct {
	Repo         i.MazeRepo
	Cache        i.MazeCache
	MaxDimension int // largest accepted width or height, defaulted when <= 0
	Logger       *logrus.Entry
}

// NewMazeService creates a MazeService from the config.
func NewMazeService(cfg Config) (*MazeService, error) {
	if cfg.Repo == nil || cfg.Cache == nil {
		return nil, errors.New("maze service requires a repo and a cache")
	}
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = defaultMaxDimension
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.WithField("component", "maze-service")
	}

	return &MazeService{
		repo:         cfg.Repo,
		cache:        cfg.Cache,
		maxDimension: cfg.MaxDimension,
		logger:       cfg.Logger,
	}, nil
}

// Create generates a maze, persists its encoding and returns the record.
func (s *MazeService) Create(ctx context.Context, width, height int, algorithm string) (*domain.MazeRecord, error) {
	if width <= 0 || height <= 0 || width > s.maxDimension || height > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d (max %d)", ErrInvalidDimensions, width, height, s.maxDimension)
	}

	m, err := maze.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}

	gen, algorithm, err := newGenerator(width, height, algorithm)
	if err != nil {
		return nil, err
	}

	for !gen.Step(m) {
	}

	encoded, err := maze.Encode(m)
	if err != nil {
		return nil, fmt.Errorf("encoding generated maze: %w", err)
	}

	record := &domain.MazeRecord{
		ID:        uuid.New(),
		Width:     width,
		Height:    height,
		Algorithm: algorithm,
		Encoded:   encoded,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("saving maze: %w", err)
	}

	if err := s.cache.Set(ctx, encodedKey(record.ID), encoded); err != nil {
		// The repo holds the truth; a cold cache only costs a later read.
		s.logger.WithError(err).Warn("caching encoded maze")
	}

	s.logger.WithFields(logrus.Fields{
		"maze_id":   record.ID,
		"width":     width,
		"height":    height,
		"algorithm": algorithm,
	}).Info("maze generated")

	return record, nil
}

// Record fetches the stored record for a maze id.
func (s *MazeService) Record(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// Encoded returns the binary encoding of a stored maze, cache first.
func (s *MazeService) Encoded(ctx context.Context, id uuid.UUID) ([]byte, error) {
	encoded, err := s.cache.Get(ctx, encodedKey(id))
	if err == nil {
		return encoded, nil
	}
	if !errors.Is(err, i.ErrCacheMiss) {
		s.logger.WithError(err).Warn("reading maze cache")
	}

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, encodedKey(id), record.Encoded); err != nil {
		s.logger.WithError(err).Warn("backfilling maze cache")
	}
	return record.Encoded, nil
}

// Maze decodes the stored maze for an id.
func (s *MazeService) Maze(ctx context.Context, id uuid.UUID) (*maze.Maze, error) {
	encoded, err := s.Encoded(ctx, id)
	if err != nil {
		return nil, err
	}
	return maze.Decode(encoded)
}

// Ascii renders the stored maze as an ASCII box drawing.
func (s *MazeService) Ascii(ctx context.Context, id uuid.UUID) (string, error) {
	m, err := s.Maze(ctx, id)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// Solve runs the named solver over the stored maze and returns the path and
// its solution trace. Traces are memoized in the cache under a named lock so
// concurrent solves of the same maze do not duplicate work.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID, algorithm string) ([]maze.Position, []byte, error) {
	kind, err := solver.ParseKind(algorithm)
	if err != nil {
		return nil, nil, err
	}

	key := traceKey(id, kind)

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		s.logger.WithError(err).Warn("acquiring solve lock")
	} else {
		defer func() {
			if err := unlock(); err != nil {
				s.logger.WithError(err).Warn("releasing solve lock")
			}
		}()
	}

	if trace, err := s.cache.Get(ctx, key); err == nil {
		path, err := solver.PathFromTrace(trace)
		if err == nil {
			return path, trace, nil
		}
		s.logger.WithError(err).Warn("discarding corrupt cached trace")
	}

	m, err := s.Maze(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	width, height := m.Bounds()
	alg, err := solver.New(kind, width, height)
	if err != nil {
		return nil, nil, err
	}

	path := runSolver(alg, m, width*height)
	if path == nil {
		return nil, nil, ErrUnsolvable
	}

	trace, err := solver.Trace(path)
	if err != nil {
		return nil, nil, fmt.Errorf("tracing solved path: %w", err)
	}

	if err := s.cache.Set(ctx, key, trace); err != nil {
		s.logger.WithError(err).Warn("caching solution trace")
	}

	return path, trace, nil
}

// runSolver drives a solver to completion. Every solver visits each cell a
// bounded number of times, so 4*cells+8 steps outlast any solvable maze; a
// nil result after that means the end is unreachable.
func runSolver(alg i.Solver, m *maze.Maze, cells int) []maze.Position {
	for steps := 0; steps <= 4*cells+8; steps++ {
		if path := alg.Step(m); path != nil {
			return path
		}
	}
	return nil
}

func newGenerator(width, height int, algorithm string) (i.Generator, string, error) {
	switch algorithm {
	case "", AlgorithmWilson:
		return generator.NewWilson(width, height), AlgorithmWilson, nil
	case AlgorithmRandomDFS:
		return generator.NewRandomDFS(width, height), AlgorithmRandomDFS, nil
	}
	return nil, "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

func encodedKey(id uuid.UUID) string {
	return fmt.Sprintf("maze:%s:encoded", id)
}

func traceKey(id uuid.UUID, kind solver.Kind) string {
	return fmt.Sprintf("maze:%s:trace:%s", id, kind)
}
