package generator

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/beka-birhanu/maze-engine/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepper is the shared generator contract under test.
type stepper interface {
	Step(m *maze.Maze) bool
}

func runToCompletion(t *testing.T, gen stepper, m *maze.Maze) {
	t.Helper()

	width, height := m.Bounds()
	// Wilson's walks are random but commit at least one cell per reseed, so
	// this bound is generous even for unlucky runs.
	for steps := 0; steps < 100_000*width*height+1000; steps++ {
		if gen.Step(m) {
			return
		}
	}
	t.Fatal("generator did not finish within the step budget")
}

// passagePairs counts open passages. Each carved passage sets one bit on
// both of its cells.
func passagePairs(t *testing.T, m *maze.Maze) int {
	t.Helper()

	width, height := m.Bounds()
	total := 0
	for i := 0; i < width*height; i++ {
		cell, err := m.GetI(i)
		require.NoError(t, err)
		total += bits.OnesCount8(cell)
	}

	require.Zero(t, total%2, "asymmetric passage found")
	return total / 2
}

// reachableCells walks the open passages from (0,0).
func reachableCells(m *maze.Maze) int {
	start := maze.Position{X: 0, Y: 0}
	visited := map[maze.Position]struct{}{start: {}}
	frontier := []maze.Position{start}

	for len(frontier) > 0 {
		pos := frontier[0]
		frontier = frontier[1:]

		for _, next := range m.TravellableNeighbors(pos) {
			if _, seen := visited[next]; !seen {
				visited[next] = struct{}{}
				frontier = append(frontier, next)
			}
		}
	}

	return len(visited)
}

func assertSpanningTree(t *testing.T, m *maze.Maze) {
	t.Helper()

	width, height := m.Bounds()
	// A connected graph with cells-1 edges is a tree: connected and acyclic.
	assert.Equal(t, width*height-1, passagePairs(t, m), "passage count")
	assert.Equal(t, width*height, reachableCells(m), "reachability from the start")
}

func TestWilsonGeneratesSpanningTree(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {5, 5}, {12, 8}, {1, 8}, {8, 1}} {
		t.Run(fmt.Sprintf("%dx%d", dims[0], dims[1]), func(t *testing.T) {
			m, err := maze.New(dims[0], dims[1])
			require.NoError(t, err)

			runToCompletion(t, NewWilson(dims[0], dims[1]), m)
			assertSpanningTree(t, m)
		})
	}
}

func TestWilsonSingleCell(t *testing.T) {
	m, err := maze.New(1, 1)
	require.NoError(t, err)

	gen := NewWilson(1, 1)
	assert.True(t, gen.Step(m), "a single cell needs no carving")
}

func TestWilsonStepAfterCompletion(t *testing.T) {
	m, err := maze.New(4, 4)
	require.NoError(t, err)

	gen := NewWilson(4, 4)
	runToCompletion(t, gen, m)

	before := passagePairs(t, m)
	assert.True(t, gen.Step(m))
	assert.Equal(t, before, passagePairs(t, m), "post-completion steps must not carve")
}

func TestWilsonTargetClearedAfterFirstCommit(t *testing.T) {
	m, err := maze.New(6, 6)
	require.NoError(t, err)

	gen := NewWilson(6, 6)
	require.NotNil(t, gen.Target())

	runToCompletion(t, gen, m)
	assert.Nil(t, gen.Target())
}

func TestRandomDFSGeneratesSpanningTree(t *testing.T) {
	for _, dims := range [][2]int{{2, 2}, {5, 5}, {12, 8}, {1, 8}} {
		t.Run(fmt.Sprintf("%dx%d", dims[0], dims[1]), func(t *testing.T) {
			m, err := maze.New(dims[0], dims[1])
			require.NoError(t, err)

			runToCompletion(t, NewRandomDFS(dims[0], dims[1]), m)
			assertSpanningTree(t, m)
		})
	}
}

func TestRandomDFSStepAfterCompletion(t *testing.T) {
	m, err := maze.New(3, 3)
	require.NoError(t, err)

	gen := NewRandomDFS(3, 3)
	runToCompletion(t, gen, m)

	assert.True(t, gen.Step(m))
	assertSpanningTree(t, m)
}
