package solver

import "github.com/beka-birhanu/maze-engine/maze"

// bfsSolver expands a FIFO frontier and records each cell's predecessor.
// The maze graph is unweighted, so the reconstructed route is shortest in
// edge count.
type bfsSolver struct {
	queue    []maze.Position
	visited  map[maze.Position]*maze.Position // position -> predecessor, nil for the start
	path     []maze.Position
	finished bool
	end      maze.Position
}

func newBFS(end maze.Position) *bfsSolver {
	start := maze.Position{X: 0, Y: 0}
	return &bfsSolver{
		queue:   []maze.Position{start},
		visited: map[maze.Position]*maze.Position{start: nil},
		end:     end,
	}
}

func (s *bfsSolver) step(m *maze.Maze) []maze.Position {
	if s.finished {
		return s.path
	}
	if len(s.queue) == 0 {
		// Frontier exhausted; the end is unreachable.
		return nil
	}

	pos := s.queue[0]
	s.queue = s.queue[1:]

	if pos == s.end {
		s.finished = true
		for at := &pos; at != nil; at = s.visited[*at] {
			s.path = append(s.path, *at)
		}
		reverse(s.path)
		return s.path
	}

	for _, next := range m.TravellableNeighbors(pos) {
		if _, seen := s.visited[next]; seen {
			continue
		}
		prev := pos
		s.visited[next] = &prev
		s.queue = append(s.queue, next)
	}

	return nil
}
