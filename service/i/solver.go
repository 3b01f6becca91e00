package i

import "github.com/beka-birhanu/maze-engine/maze"

// Solver advances pathfinding by one increment per Step call. It returns nil
// while the search is pending and the final start-to-end path once done;
// calling Step after completion keeps returning the same path. Solvers only
// read the maze.
type Solver interface {
	Step(m *maze.Maze) []maze.Position
}
