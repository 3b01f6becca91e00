package solver

import (
	"testing"

	"github.com/beka-birhanu/maze-engine/generator"
	"github.com/beka-birhanu/maze-engine/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allOpen builds a grid with every cell's four passage bits set, border
// included; travellable-neighbor lookups clip to the grid.
func allOpen(t *testing.T, width, height int) *maze.Maze {
	t.Helper()

	m, err := maze.New(width, height)
	require.NoError(t, err)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for _, dir := range []maze.Direction{maze.Up, maze.Right, maze.Down, maze.Left} {
				require.NoError(t, m.Open(x, y, dir))
			}
		}
	}
	return m
}

func generated(t *testing.T, width, height int) *maze.Maze {
	t.Helper()

	m, err := maze.New(width, height)
	require.NoError(t, err)

	gen := generator.NewWilson(width, height)
	for steps := 0; steps < 100_000*width*height; steps++ {
		if gen.Step(m) {
			return m
		}
	}
	t.Fatal("maze generation did not finish")
	return nil
}

func solve(t *testing.T, alg *Algorithm, m *maze.Maze) []maze.Position {
	t.Helper()

	width, height := m.Bounds()
	for steps := 0; steps <= 4*width*height+8; steps++ {
		if path := alg.Step(m); path != nil {
			return path
		}
	}
	t.Fatalf("%s did not finish within the step budget", alg.Kind())
	return nil
}

func assertValidPath(t *testing.T, m *maze.Maze, path []maze.Position) {
	t.Helper()

	width, height := m.Bounds()
	require.NotEmpty(t, path)
	assert.Equal(t, maze.Position{X: 0, Y: 0}, path[0])
	assert.Equal(t, maze.Position{X: width - 1, Y: height - 1}, path[len(path)-1])

	for i := 0; i+1 < len(path); i++ {
		assert.Contains(t, m.TravellableNeighbors(path[i]), path[i+1],
			"step %d is not an open passage", i)
	}
}

func TestParseKind(t *testing.T) {
	for name, kind := range map[string]Kind{
		"dfs": DFS, "bfs": BFS, "a-star": AStar, "astar": AStar, "BFS": BFS,
	} {
		parsed, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("dijkstra")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNewRejectsInvalidBounds(t *testing.T) {
	_, err := New(BFS, 0, 3)
	assert.Error(t, err)

	_, err = New(Kind(42), 3, 3)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSolversOnOpenGrid(t *testing.T) {
	for _, kind := range []Kind{DFS, BFS, AStar} {
		t.Run(kind.String(), func(t *testing.T) {
			m := allOpen(t, 3, 3)

			alg, err := New(kind, 3, 3)
			require.NoError(t, err)

			assertValidPath(t, m, solve(t, alg, m))
		})
	}
}

func TestBFSFindsManhattanOptimalPath(t *testing.T) {
	m := allOpen(t, 3, 3)

	alg, err := New(BFS, 3, 3)
	require.NoError(t, err)

	path := solve(t, alg, m)
	assert.Len(t, path, 5, "3x3 open grid has a 5-coordinate shortest route")
}

func TestDFSDeterministicTieBreak(t *testing.T) {
	// On an open 2x2 grid the Up, Right, Down, Left order makes DFS go
	// right first, then down.
	m := allOpen(t, 2, 2)

	alg, err := New(DFS, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, []maze.Position{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
	}, solve(t, alg, m))
}

func TestSolversOnGeneratedMaze(t *testing.T) {
	m := generated(t, 8, 8)

	var paths []([]maze.Position)
	for _, kind := range []Kind{DFS, BFS, AStar} {
		alg, err := New(kind, 8, 8)
		require.NoError(t, err)

		path := solve(t, alg, m)
		assertValidPath(t, m, path)
		paths = append(paths, path)
	}

	// A perfect maze has exactly one route between any two cells, so the
	// three solvers must agree.
	assert.Equal(t, paths[1], paths[0])
	assert.Equal(t, paths[1], paths[2])
}

func TestBFSNeverLongerThanDFS(t *testing.T) {
	m := allOpen(t, 4, 4)

	dfs, err := New(DFS, 4, 4)
	require.NoError(t, err)
	bfs, err := New(BFS, 4, 4)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(solve(t, bfs, m)), len(solve(t, dfs, m)))
}

func TestStepIdempotentAfterCompletion(t *testing.T) {
	m := generated(t, 5, 5)

	for _, kind := range []Kind{DFS, BFS, AStar} {
		t.Run(kind.String(), func(t *testing.T) {
			alg, err := New(kind, 5, 5)
			require.NoError(t, err)

			path := solve(t, alg, m)
			assert.Equal(t, path, alg.Step(m))
			assert.Equal(t, path, alg.Step(m))
		})
	}
}

func TestSolverPendingOnUnreachableEnd(t *testing.T) {
	// Two disconnected horizontal corridors; the far corner is unreachable.
	m, err := maze.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Carve(0, 0, maze.Right))

	for _, kind := range []Kind{DFS, BFS, AStar} {
		t.Run(kind.String(), func(t *testing.T) {
			alg, err := New(kind, 2, 2)
			require.NoError(t, err)

			for steps := 0; steps < 50; steps++ {
				assert.Nil(t, alg.Step(m))
			}
		})
	}
}
