package maze

// Direction identifies one side of a cell. Each direction occupies its own
// bit so the set of open sides packs into a single nibble.
type Direction uint8

const (
	Up    Direction = 1 << iota // 0b0001
	Right                       // 0b0010
	Down                        // 0b0100
	Left                        // 0b1000
)

// Opposite returns the direction pointing back at the caller.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return 0
}

// Travel returns the coordinate one step away in the direction. Callers must
// keep the result inside the grid; traveling off the low edge is never
// attempted by the engine and must be guarded, not tried blindly.
func (d Direction) Travel(x, y int) (int, int) {
	switch d {
	case Up:
		return x, y - 1
	case Down:
		return x, y + 1
	case Left:
		return x - 1, y
	case Right:
		return x + 1, y
	}
	return x, y
}

// String returns the single-letter name used by solution traces.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "?"
}
