package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, Down, Up.Opposite())
	assert.Equal(t, Up, Down.Opposite())
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, Left, Right.Opposite())
}

func TestDirectionTravel(t *testing.T) {
	cases := []struct {
		dir  Direction
		x, y int
	}{
		{Up, 3, 2},
		{Down, 3, 4},
		{Left, 2, 3},
		{Right, 4, 3},
	}

	for _, c := range cases {
		t.Run(c.dir.String(), func(t *testing.T) {
			x, y := c.dir.Travel(3, 3)
			assert.Equal(t, c.x, x)
			assert.Equal(t, c.y, y)
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "U", Up.String())
	assert.Equal(t, "R", Right.String())
	assert.Equal(t, "D", Down.String())
	assert.Equal(t, "L", Left.String())
}

func TestDirectionBits(t *testing.T) {
	// The four flags pack into one nibble.
	assert.EqualValues(t, 0b0001, Up)
	assert.EqualValues(t, 0b0010, Right)
	assert.EqualValues(t, 0b0100, Down)
	assert.EqualValues(t, 0b1000, Left)
}
