// Package mazeapi exposes maze generation and solving over HTTP and, for
// step-by-step watching, over a websocket.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/maze-engine/domain"
	"github.com/beka-birhanu/maze-engine/maze"
)

// CreateMazeRequest asks for a new maze.
type CreateMazeRequest struct {
	Width     int    `json:"width" binding:"required,min=1"`
	Height    int    `json:"height" binding:"required,min=1"`
	Algorithm string `json:"algorithm"` // "wilson" (default) or "random-dfs"
}

// MazeResponse carries a stored maze. Encoded is the binary maze format,
// base64 on the wire.
type MazeResponse struct {
	ID        string    `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Algorithm string    `json:"algorithm"`
	Encoded   []byte    `json:"encoded"`
	CreatedAt time.Time `json:"created_at"`
}

func newMazeResponse(record *domain.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        record.ID.String(),
		Width:     record.Width,
		Height:    record.Height,
		Algorithm: record.Algorithm,
		Encoded:   record.Encoded,
		CreatedAt: record.CreatedAt,
	}
}

// SolveRequest selects the pathfinding algorithm.
type SolveRequest struct {
	Algorithm string `json:"algorithm" binding:"required"` // "dfs", "bfs" or "a-star"
}

// PathPosition is one coordinate of a solution path.
type PathPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SolveResponse carries a solution: the coordinate path from (0,0) to the
// far corner and its trace, one 'U'|'D'|'L'|'R' letter per step.
type SolveResponse struct {
	Algorithm string         `json:"algorithm"`
	Path      []PathPosition `json:"path"`
	Trace     string         `json:"trace"`
}

func newSolveResponse(algorithm string, path []maze.Position, trace []byte) *SolveResponse {
	positions := make([]PathPosition, len(path))
	for i, pos := range path {
		positions[i] = PathPosition{X: pos.X, Y: pos.Y}
	}

	return &SolveResponse{
		Algorithm: algorithm,
		Path:      positions,
		Trace:     string(trace),
	}
}

// LiveFrame is one websocket frame of a live generation: the maze after the
// step, the generator's current walk and whether generation finished.
type LiveFrame struct {
	Done    bool           `json:"done"`
	Encoded []byte         `json:"encoded"`
	Walk    []PathPosition `json:"walk,omitempty"`
}
