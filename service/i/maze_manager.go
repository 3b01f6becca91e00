package i

import (
	"context"

	"github.com/beka-birhanu/maze-engine/domain"
	"github.com/beka-birhanu/maze-engine/maze"
	"github.com/google/uuid"
)

// MazeManager exposes the engine operations the API serves.
type MazeManager interface {
	// Create generates a new maze with the named algorithm ("wilson" or
	// "random-dfs"; empty defaults to wilson), persists it and returns its
	// record.
	Create(ctx context.Context, width, height int, algorithm string) (*domain.MazeRecord, error)

	// Record fetches the stored record for a maze id.
	Record(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error)

	// Ascii renders the stored maze as an ASCII box drawing.
	Ascii(ctx context.Context, id uuid.UUID) (string, error)

	// Solve runs the named solver ("dfs", "bfs" or "a-star") over the stored
	// maze and returns the coordinate path plus its solution trace.
	Solve(ctx context.Context, id uuid.UUID, algorithm string) ([]maze.Position, []byte, error)
}
