package solver

import (
	"fmt"

	"github.com/beka-birhanu/maze-engine/maze"
)

// Trace renders a solved path in the solution trace format: one ASCII byte
// per step, 'U', 'D', 'L' or 'R', naming the direction from each coordinate
// to the next.
func Trace(path []maze.Position) ([]byte, error) {
	if len(path) == 0 {
		return nil, nil
	}

	trace := make([]byte, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		dir, ok := stepDirection(path[i], path[i+1])
		if !ok {
			return nil, fmt.Errorf("path coordinates (%d,%d) and (%d,%d) are not adjacent",
				path[i].X, path[i].Y, path[i+1].X, path[i+1].Y)
		}
		trace = append(trace, dir.String()[0])
	}

	return trace, nil
}

// PathFromTrace rebuilds the coordinate path a trace describes, starting
// from (0,0).
func PathFromTrace(trace []byte) ([]maze.Position, error) {
	path := make([]maze.Position, 1, len(trace)+1)
	path[0] = maze.Position{X: 0, Y: 0}

	for _, step := range trace {
		var dir maze.Direction
		switch step {
		case 'U':
			dir = maze.Up
		case 'D':
			dir = maze.Down
		case 'L':
			dir = maze.Left
		case 'R':
			dir = maze.Right
		default:
			return nil, fmt.Errorf("invalid trace byte %q", step)
		}

		last := path[len(path)-1]
		x, y := dir.Travel(last.X, last.Y)
		path = append(path, maze.Position{X: x, Y: y})
	}

	return path, nil
}

func stepDirection(from, to maze.Position) (maze.Direction, bool) {
	switch {
	case to.X == from.X+1 && to.Y == from.Y:
		return maze.Right, true
	case to.X == from.X-1 && to.Y == from.Y:
		return maze.Left, true
	case to.X == from.X && to.Y == from.Y+1:
		return maze.Down, true
	case to.X == from.X && to.Y == from.Y-1:
		return maze.Up, true
	}
	return 0, false
}
