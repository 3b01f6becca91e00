package solver

import (
	"sort"

	"github.com/beka-birhanu/maze-engine/maze"
)

// cellInfo carries the A* bookkeeping for one cell.
type cellInfo struct {
	cost      int            // steps taken from the start
	heuristic int            // Manhattan estimate, measured from the expanded cell
	from      *maze.Position // nil for the start
}

// aStarSolver keeps an open frontier ordered by (cost, heuristic) and a
// closed set of expanded cells.
//
// One quirk is kept on purpose rather than "fixed" to textbook A*: the
// heuristic is measured from the expanded cell instead of the candidate
// neighbor. The search still terminates with a valid route, but not always
// the shortest one.
type aStarSolver struct {
	open   map[maze.Position]cellInfo
	closed map[maze.Position]cellInfo
	path   []maze.Position
	end    maze.Position
}

func newAStar(end maze.Position) *aStarSolver {
	s := &aStarSolver{
		open:   make(map[maze.Position]cellInfo),
		closed: make(map[maze.Position]cellInfo),
		end:    end,
	}

	start := maze.Position{X: 0, Y: 0}
	s.open[start] = cellInfo{cost: 0, heuristic: manhattan(start, end)}
	return s
}

func (s *aStarSolver) step(m *maze.Maze) []maze.Position {
	if len(s.path) > 0 {
		return s.path
	}
	if len(s.open) == 0 {
		// Frontier exhausted; the end is unreachable.
		return nil
	}

	current, info := s.popMin()

	if current == s.end {
		for at := &current; at != nil; {
			s.path = append(s.path, *at)
			at = s.closed[*at].from
		}
		reverse(s.path)
		return s.path
	}

	for _, next := range m.TravellableNeighbors(current) {
		// Expanded cells stay closed; rewriting their predecessors could
		// cycle the reconstruction.
		if _, ok := s.closed[next]; ok {
			continue
		}

		// No cost-decrease update for cells already on the frontier.
		if _, ok := s.open[next]; !ok {
			s.open[next] = cellInfo{
				cost:      info.cost + 1,
				heuristic: manhattan(current, s.end),
				from:      &current,
			}
		}
	}

	return nil
}

// popMin removes the open entry with the lowest cost, breaking ties on the
// lower heuristic and then on position order so runs are reproducible, and
// moves it to the closed set.
func (s *aStarSolver) popMin() (maze.Position, cellInfo) {
	positions := make([]maze.Position, 0, len(s.open))
	for pos := range s.open {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})

	best := positions[0]
	for _, pos := range positions[1:] {
		cand, top := s.open[pos], s.open[best]
		if cand.cost < top.cost || (cand.cost == top.cost && cand.heuristic < top.heuristic) {
			best = pos
		}
	}

	info := s.open[best]
	delete(s.open, best)
	s.closed[best] = info
	return best, info
}

func manhattan(a, b maze.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
