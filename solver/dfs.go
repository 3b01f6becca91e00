package solver

import "github.com/beka-birhanu/maze-engine/maze"

// dfsSolver walks depth-first, keeping its path stack as the current route
// from the start. The result is a route, not necessarily the shortest one.
type dfsSolver struct {
	visited map[maze.Position]struct{}
	path    []maze.Position
	end     maze.Position
}

func newDFS(end maze.Position) *dfsSolver {
	return &dfsSolver{
		visited: make(map[maze.Position]struct{}),
		path:    []maze.Position{{X: 0, Y: 0}},
		end:     end,
	}
}

// step pushes the first unvisited travellable neighbor, relying on the fixed
// Up, Right, Down, Left enumeration order for deterministic tie-breaks, or
// pops on a dead end.
func (s *dfsSolver) step(m *maze.Maze) []maze.Position {
	if len(s.path) == 0 {
		// Every reachable cell exhausted without finding the end.
		return nil
	}

	pos := s.path[len(s.path)-1]
	if pos == s.end {
		return s.path
	}

	s.visited[pos] = struct{}{}

	for _, next := range m.TravellableNeighbors(pos) {
		if _, seen := s.visited[next]; !seen {
			s.path = append(s.path, next)
			return nil
		}
	}

	s.path = s.path[:len(s.path)-1]
	return nil
}
