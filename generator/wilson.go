/*
Package generator provides step-driven maze generators.

Each generator mutates a maze through its Carve primitive until the carved
cells form a spanning tree: every cell reachable from every other, exactly
width*height-1 passages, no cycles. One Step call performs one increment of
work, so callers decide the pacing — a tight loop runs to completion, a
ticker animates the build.
*/
package generator

import (
	"math/rand"

	"github.com/beka-birhanu/maze-engine/maze"
)

// Wilson carves a uniform spanning tree with loop-erased random walks
// (Wilson's algorithm). Every perfect maze of the given size is an equally
// likely outcome, unlike the corridor-biased RandomDFS.
type Wilson struct {
	walk []maze.Position

	// firstWalkTarget gives the first walk somewhere to finish while no cell
	// has been carved yet. Advisory: any carved cell ends later walks.
	firstWalkTarget *maze.Position

	// oppositeOfLast dampens immediate two-step backtracking. Zero means no
	// damping, i.e. the walk just (re)started.
	oppositeOfLast maze.Direction
}

// NewWilson prepares the first walk for a width-by-height maze.
func NewWilson(width, height int) *Wilson {
	if width*height < 2 {
		// Nothing to carve; Step reports done immediately.
		return &Wilson{}
	}

	start := maze.Position{X: rand.Intn(width), Y: rand.Intn(height)}
	target := start
	for target == start {
		target = maze.Position{X: rand.Intn(width), Y: rand.Intn(height)}
	}

	return &Wilson{
		walk:            []maze.Position{start},
		firstWalkTarget: &target,
	}
}

// Walk returns the positions of the current loop-erased walk, oldest first.
// Callers rendering the generator read it; they must not retain the slice
// across steps.
func (w *Wilson) Walk() []maze.Position {
	return w.walk
}

// Target returns the advisory first-walk target, or nil once a walk has
// committed.
func (w *Wilson) Target() *maze.Position {
	return w.firstWalkTarget
}

// Step advances the walk by one cell and reports whether generation is
// complete. Calling Step after completion keeps returning true.
func (w *Wilson) Step(m *maze.Maze) bool {
	if len(w.walk) == 0 {
		return true
	}

	pos := w.walk[len(w.walk)-1]
	neighbors := m.Neighbors(pos)

	next := neighbors[rand.Intn(len(neighbors))]
	if w.oppositeOfLast != 0 && next.Dir == w.oppositeOfLast {
		// One redraw dampens immediate two-step backtracking without
		// forbidding it; the second draw stands either way. Longer loops stay
		// allowed and are erased below.
		next = neighbors[rand.Intn(len(neighbors))]
	}

	if i := w.indexInWalk(next.Pos); i >= 0 {
		// Loop erasure: drop everything after the earlier visit.
		w.walk = w.walk[:i+1]
		return false
	}

	w.oppositeOfLast = next.Dir.Opposite()
	w.walk = append(w.walk, next.Pos)

	cell, _ := m.Get(next.Pos.X, next.Pos.Y)
	if cell != 0 || (w.firstWalkTarget != nil && next.Pos == *w.firstWalkTarget) {
		w.firstWalkTarget = nil
		w.commit(m)
		return w.reseed(m)
	}

	return false
}

func (w *Wilson) indexInWalk(pos maze.Position) int {
	for i, p := range w.walk {
		if p == pos {
			return i
		}
	}
	return -1
}

// commit turns the loop-erased walk into tree edges.
func (w *Wilson) commit(m *maze.Maze) {
	for i := 0; i+1 < len(w.walk); i++ {
		from := w.walk[i]
		// Consecutive walk positions are adjacent and in bounds, so Carve
		// cannot fail here.
		_ = m.Carve(from.X, from.Y, directionBetween(from, w.walk[i+1]))
	}
}

// reseed starts the next walk from a random still-uncarved cell and reports
// true when none remain.
func (w *Wilson) reseed(m *maze.Maze) bool {
	w.walk = w.walk[:0]
	w.oppositeOfLast = 0

	uncarved := m.UncarvedCells()
	if len(uncarved) == 0 {
		return true
	}

	w.walk = append(w.walk, uncarved[rand.Intn(len(uncarved))])
	return false
}

func directionBetween(from, to maze.Position) maze.Direction {
	switch {
	case to.X > from.X:
		return maze.Right
	case to.X < from.X:
		return maze.Left
	case to.Y > from.Y:
		return maze.Down
	default:
		return maze.Up
	}
}
