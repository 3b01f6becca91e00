package i

import "github.com/beka-birhanu/maze-engine/maze"

// Generator advances maze generation by one increment per Step call and
// reports whether the maze is complete. Implementations own their walk
// state; the maze is theirs alone to mutate while generation runs.
type Generator interface {
	Step(m *maze.Maze) bool
}
