/*
Package maze implements the grid data model for rectangular mazes.

A maze is a row-major array of cells, each a 4-bit mask recording which of
its four sides opens onto the neighboring cell. Passages are symmetric: the
only mutator that callers should reach for is Carve, which opens both sides
of a wall at once. Open and Close exist for tooling and make no symmetry
guarantee on their own.

The package also provides the compact binary codec for mazes (see codec.go)
and an ASCII rendering for quick inspection.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfBounds reports a coordinate at or beyond a maze dimension.
	ErrOutOfBounds = errors.New("cell position out of bounds")
)

// Position is a cell coordinate. X grows rightward, Y grows downward.
type Position struct {
	X int
	Y int
}

// Neighbor pairs an adjacent cell with the direction that leads to it.
type Neighbor struct {
	Pos Position
	Dir Direction
}

// Maze is a rectangular grid of cells with passage bitmasks.
type Maze struct {
	width  int
	height int
	cells  []uint8
}

// New creates a fully walled maze of the given dimensions.
func New(width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid maze dimensions %dx%d", width, height)
	}

	return &Maze{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}, nil
}

// Bounds returns the maze width and height.
func (m *Maze) Bounds() (int, int) {
	return m.width, m.height
}

// Get returns the passage bitmask of cell (x,y).
func (m *Maze) Get(x, y int) (uint8, error) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.cells[y*m.width+x], nil
}

// GetI returns the passage bitmask of the cell at row-major index i.
func (m *Maze) GetI(i int) (uint8, error) {
	if i < 0 || i >= len(m.cells) {
		return 0, fmt.Errorf("%w: index %d outside %d cells", ErrOutOfBounds, i, len(m.cells))
	}
	return m.cells[i], nil
}

// IToXY converts a row-major cell index to a coordinate.
func (m *Maze) IToXY(i int) (int, int, error) {
	if _, err := m.GetI(i); err != nil {
		return 0, 0, err
	}
	return i % m.width, i / m.width, nil
}

// XYToI converts a coordinate to its row-major cell index.
func (m *Maze) XYToI(x, y int) (int, error) {
	if _, err := m.Get(x, y); err != nil {
		return 0, err
	}
	return y*m.width + x, nil
}

// Open sets the passage bit for dir on cell (x,y) only. The matching bit on
// the neighbor is untouched, so symmetry is the caller's problem; prefer
// Carve.
func (m *Maze) Open(x, y int, dir Direction) error {
	cell, err := m.Get(x, y)
	if err != nil {
		return err
	}
	m.cells[y*m.width+x] = cell | uint8(dir)
	return nil
}

// Close clears the passage bit for dir on cell (x,y) only.
func (m *Maze) Close(x, y int, dir Direction) error {
	cell, err := m.Get(x, y)
	if err != nil {
		return err
	}
	m.cells[y*m.width+x] = cell &^ uint8(dir)
	return nil
}

// Carve opens the passage from (x,y) toward dir on both sides of the wall.
// It is the only symmetry-preserving mutator; callers must pick a direction
// that keeps the neighbor in bounds.
func (m *Maze) Carve(x, y int, dir Direction) error {
	if err := m.Open(x, y, dir); err != nil {
		return err
	}

	nx, ny := dir.Travel(x, y)
	return m.Open(nx, ny, dir.Opposite())
}

// Delete resets cell (x,y) to fully walled. Tooling only: it does not touch
// the neighbors' bits, so the surrounding passages become asymmetric.
func (m *Maze) Delete(x, y int) error {
	if _, err := m.Get(x, y); err != nil {
		return err
	}
	m.cells[y*m.width+x] = 0
	return nil
}

// Neighbors returns the grid-adjacent cells of pos regardless of wall state,
// paired with the direction leading to each.
func (m *Maze) Neighbors(pos Position) []Neighbor {
	neighbors := make([]Neighbor, 0, 4)

	if pos.Y > 0 {
		neighbors = append(neighbors, Neighbor{Pos: Position{X: pos.X, Y: pos.Y - 1}, Dir: Up})
	}
	if pos.X+1 < m.width {
		neighbors = append(neighbors, Neighbor{Pos: Position{X: pos.X + 1, Y: pos.Y}, Dir: Right})
	}
	if pos.Y+1 < m.height {
		neighbors = append(neighbors, Neighbor{Pos: Position{X: pos.X, Y: pos.Y + 1}, Dir: Down})
	}
	if pos.X > 0 {
		neighbors = append(neighbors, Neighbor{Pos: Position{X: pos.X - 1, Y: pos.Y}, Dir: Left})
	}

	return neighbors
}

// TravellableNeighbors returns the cells reachable from pos through open
// passages. The enumeration order is fixed Up, Right, Down, Left so that
// traversals taking the first candidate stay deterministic.
func (m *Maze) TravellableNeighbors(pos Position) []Position {
	cell, err := m.Get(pos.X, pos.Y)
	if err != nil {
		return nil
	}

	neighbors := make([]Position, 0, 4)

	if pos.Y > 0 && cell&uint8(Up) != 0 {
		neighbors = append(neighbors, Position{X: pos.X, Y: pos.Y - 1})
	}
	if pos.X+1 < m.width && cell&uint8(Right) != 0 {
		neighbors = append(neighbors, Position{X: pos.X + 1, Y: pos.Y})
	}
	if pos.Y+1 < m.height && cell&uint8(Down) != 0 {
		neighbors = append(neighbors, Position{X: pos.X, Y: pos.Y + 1})
	}
	if pos.X > 0 && cell&uint8(Left) != 0 {
		neighbors = append(neighbors, Position{X: pos.X - 1, Y: pos.Y})
	}

	return neighbors
}

// UncarvedCells returns every cell whose bitmask is still zero, i.e. not yet
// part of the maze. Generators restart their walks from these.
func (m *Maze) UncarvedCells() []Position {
	var uncarved []Position
	for i, cell := range m.cells {
		if cell == 0 {
			uncarved = append(uncarved, Position{X: i % m.width, Y: i / m.width})
		}
	}
	return uncarved
}

// String renders the maze as an ASCII box drawing.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", m.width) + "\n")

	for y := 0; y < m.height; y++ {
		// Cell rows
		b.WriteString("|")
		for x := 0; x < m.width; x++ {
			if m.cells[y*m.width+x]&uint8(Right) != 0 {
				b.WriteString("    ")
			} else {
				b.WriteString("   |")
			}
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for x := 0; x < m.width; x++ {
			if m.cells[y*m.width+x]&uint8(Down) != 0 {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
