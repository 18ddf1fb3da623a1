package maze

// Cell types
type Cell uint8

const (
	Wall Cell = iota
	Open
)

type Point struct {
	X, Y int
}

// Grid is a square occupancy grid in row-major order.
// It is immutable once returned by Generate; the active session owns it
// exclusively for its lifetime.
type Grid struct {
	cells []Cell
	size  int
}

func newGrid(size int) Grid {
	return Grid{
		cells: make([]Cell, size*size), // zero value is Wall
		size:  size,
	}
}

// Size returns the grid edge length.
func (g Grid) Size() int {
	return g.size
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as Wall.
func (g Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.size+x]
}

// OpenAt reports whether (x, y) is in bounds and Open.
func (g Grid) OpenAt(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.size+x] == Open
}

func (g Grid) set(x, y int, c Cell) {
	g.cells[y*g.size+x] = c
}

// Parse builds a grid from equal-length rows of '#' (wall) and '.' (open).
// Intended for fixtures and tests; Generate is the production path.
func Parse(rows []string) Grid {
	g := newGrid(len(rows))
	for y, row := range rows {
		for x, r := range row {
			if r == '.' {
				g.set(x, y, Open)
			}
		}
	}
	return g
}
