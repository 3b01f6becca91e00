package solver

import (
	"testing"

	"github.com/beka-birhanu/maze-engine/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	trace, err := Trace([]maze.Position{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: 0, Y: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("RDLU"), trace)
}

func TestTraceEmptyAndSingle(t *testing.T) {
	trace, err := Trace(nil)
	require.NoError(t, err)
	assert.Empty(t, trace)

	trace, err = Trace([]maze.Position{{X: 0, Y: 0}})
	require.NoError(t, err)
	assert.Empty(t, trace)
}

func TestTraceRejectsNonAdjacentSteps(t *testing.T) {
	_, err := Trace([]maze.Position{{X: 0, Y: 0}, {X: 2, Y: 0}})
	assert.Error(t, err)

	_, err = Trace([]maze.Position{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)
}

func TestPathFromTraceRoundTrip(t *testing.T) {
	path := []maze.Position{
		{X: 0, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 1, Y: 2},
	}

	trace, err := Trace(path)
	require.NoError(t, err)

	rebuilt, err := PathFromTrace(trace)
	require.NoError(t, err)
	assert.Equal(t, path, rebuilt)
}

func TestPathFromTraceRejectsUnknownBytes(t *testing.T) {
	_, err := PathFromTrace([]byte("RDX"))
	assert.Error(t, err)
}
