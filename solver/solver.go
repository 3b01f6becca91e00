/*
Package solver implements three step-driven pathfinders over a completed
maze: depth-first search, breadth-first search and A*.

Solvers never mutate the maze. Each owns its own exploration state, advances
by one increment per Step call and, once finished, keeps returning the same
path from (0,0) to the far corner. The variant set is fixed and small, so
Algorithm is a closed tagged union dispatched with a single switch.
*/
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/maze-engine/maze"
)

// ErrUnknownKind reports a solver name or tag outside the fixed variant set.
var ErrUnknownKind = errors.New("unknown solver kind")

// Kind selects one of the solver variants.
type Kind int

const (
	DFS Kind = iota
	BFS
	AStar
)

// ParseKind maps the wire names used by the API onto solver kinds.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	case "a-star", "astar":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case DFS:
		return "dfs"
	case BFS:
		return "bfs"
	case AStar:
		return "a-star"
	}
	return "unknown"
}

// Algorithm is the closed set of solver variants behind the common step
// contract.
type Algorithm struct {
	kind  Kind
	dfs   *dfsSolver
	bfs   *bfsSolver
	astar *aStarSolver
}

// New builds a solver for a width-by-height maze. Every solver starts at
// (0,0) and targets (width-1, height-1).
func New(kind Kind, width, height int) (*Algorithm, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid solver bounds %dx%d", width, height)
	}

	end := maze.Position{X: width - 1, Y: height - 1}
	a := &Algorithm{kind: kind}

	switch kind {
	case DFS:
		a.dfs = newDFS(end)
	case BFS:
		a.bfs = newBFS(end)
	case AStar:
		a.astar = newAStar(end)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	return a, nil
}

// Kind returns the variant tag.
func (a *Algorithm) Kind() Kind {
	return a.kind
}

// Step advances the solver by one increment. It returns nil while the search
// is pending and the full start-to-end path once done; further calls keep
// returning the same path.
func (a *Algorithm) Step(m *maze.Maze) []maze.Position {
	switch a.kind {
	case DFS:
		return a.dfs.step(m)
	case BFS:
		return a.bfs.step(m)
	case AStar:
		return a.astar.step(m)
	}
	return nil
}

func reverse(path []maze.Position) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
