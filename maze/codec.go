package maze

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Binary maze format: a 2-byte big-endian width followed by the cell
// bitmasks packed two per byte, first cell in the high nibble. An odd cell
// count leaves the final low nibble zero.
//
// Decoding treats a trailing zero nibble as padding, always. The format
// cannot tell padding apart from a legitimately fully-walled final cell, so
// a maze with an even cell count whose last cell is zero does not round-trip:
// Decode either drops that cell or, when the reduced count stops dividing by
// the width, reports a malformed encoding. Generated mazes never hit this
// because every carved cell has a non-zero mask.

// ErrMalformedEncoding reports a byte buffer that cannot be decoded into a
// maze: truncated data, a zero width, or a cell count that does not fill
// whole rows.
var ErrMalformedEncoding = errors.New("malformed maze encoding")

// Encode serializes the maze into the binary format.
func Encode(m *Maze) ([]byte, error) {
	if m.width > math.MaxUint16 {
		return nil, fmt.Errorf("maze width %d does not fit in two bytes", m.width)
	}

	data := make([]byte, 2, 2+(len(m.cells)+1)/2)
	binary.BigEndian.PutUint16(data, uint16(m.width))

	for i := 0; i < len(m.cells); i += 2 {
		packed := m.cells[i] << 4
		if i+1 < len(m.cells) {
			packed |= m.cells[i+1]
		}
		data = append(data, packed)
	}

	return data, nil
}

// Decode reconstructs a maze from the binary format. On failure it returns
// an error wrapping ErrMalformedEncoding and no partial maze.
func Decode(data []byte) (*Maze, error) {
	if len(data) < 3 {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrMalformedEncoding, len(data))
	}

	width := int(binary.BigEndian.Uint16(data))
	if width == 0 {
		return nil, fmt.Errorf("%w: zero width", ErrMalformedEncoding)
	}

	cellData := data[2:]
	cellCount := len(cellData) * 2
	if cellData[len(cellData)-1]&0x0f == 0 {
		// Padding heuristic, see the format note above.
		cellCount--
	}

	if cellCount%width != 0 {
		return nil, fmt.Errorf("%w: %d cells do not fill rows of width %d", ErrMalformedEncoding, cellCount, width)
	}

	m, err := New(width, cellCount/width)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	for i := 0; i < cellCount; i++ {
		packed := cellData[i/2]
		if i%2 == 0 {
			m.cells[i] = packed >> 4
		} else {
			m.cells[i] = packed & 0x0f
		}
	}

	return m, nil
}
