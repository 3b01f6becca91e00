package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/maze-engine/domain"
	"github.com/google/uuid"
)

// ErrMazeNotFound reports a maze id with no stored record.
var ErrMazeNotFound = errors.New("maze not found")

// MazeRepo defines the persistence operations for generated mazes.
type MazeRepo interface {
	// Save inserts or updates a maze record.
	Save(ctx context.Context, record *domain.MazeRecord) error

	// ByID retrieves a maze record by id. Returns ErrMazeNotFound when no
	// record exists.
	ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error)
}
