package generator

import (
	"math/rand"

	"github.com/beka-birhanu/maze-engine/maze"
)

// RandomDFS carves a maze with a randomized depth-first walk: carve toward a
// random uncarved neighbor, backtrack on dead ends. Faster than Wilson but
// biased toward long corridors.
type RandomDFS struct {
	stack []maze.Position
}

// NewRandomDFS starts the walk at a random cell of a width-by-height maze.
func NewRandomDFS(width, height int) *RandomDFS {
	return &RandomDFS{
		stack: []maze.Position{{X: rand.Intn(width), Y: rand.Intn(height)}},
	}
}

// Stack returns the current backtracking stack, oldest first, for callers
// rendering the generator.
func (g *RandomDFS) Stack() []maze.Position {
	return g.stack
}

// Step advances the walk by one cell and reports whether generation is
// complete.
func (g *RandomDFS) Step(m *maze.Maze) bool {
	if len(g.stack) == 0 {
		return true
	}

	pos := g.stack[len(g.stack)-1]

	var uncarved []maze.Neighbor
	for _, n := range m.Neighbors(pos) {
		if cell, err := m.Get(n.Pos.X, n.Pos.Y); err == nil && cell == 0 {
			uncarved = append(uncarved, n)
		}
	}

	if len(uncarved) == 0 {
		g.stack = g.stack[:len(g.stack)-1]
		return len(g.stack) == 0
	}

	next := uncarved[rand.Intn(len(uncarved))]
	g.stack = append(g.stack, next.Pos)
	_ = m.Carve(pos.X, pos.Y, next.Dir)

	return false
}
