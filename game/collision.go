package game

import (
	"math"

	"github.com/lixenwraith/maze3d/input"
	"github.com/lixenwraith/maze3d/maze"
)

// MoveVector sums the held movement actions into a world-space displacement.
// Forward/back run along the heading, strafes perpendicular to it, all scaled
// by the per-tick speed.
func MoveVector(heading, speed float64, acts input.ActionSet) (dx, dy float64) {
	if acts.Has(input.Forward) {
		dx += math.Cos(heading) * speed
		dy += math.Sin(heading) * speed
	}
	if acts.Has(input.Backward) {
		dx -= math.Cos(heading) * speed
		dy -= math.Sin(heading) * speed
	}
	if acts.Has(input.StrafeLeft) {
		dx += math.Cos(heading-math.Pi/2) * speed
		dy += math.Sin(heading-math.Pi/2) * speed
	}
	if acts.Has(input.StrafeRight) {
		dx += math.Cos(heading+math.Pi/2) * speed
		dy += math.Sin(heading+math.Pi/2) * speed
	}
	return dx, dy
}

// Move resolves a displacement against the grid. The combined move wins when
// its destination cell is open; otherwise each axis is tested independently
// against the other current coordinate, so contact with a wall slides along
// it instead of stopping dead. Cells outside the grid are never accepted.
func Move(p Pose, g maze.Grid, dx, dy float64) Pose {
	if dx == 0 && dy == 0 {
		return p
	}

	nx, ny := p.X+dx, p.Y+dy

	if cellOpen(g, nx, ny) {
		p.X, p.Y = nx, ny
		return p
	}

	if cellOpen(g, nx, p.Y) {
		p.X = nx
	}
	if cellOpen(g, p.X, ny) {
		p.Y = ny
	}
	return p
}

// cellOpen tests the grid cell containing a continuous coordinate. Negative
// coordinates are rejected outright; integer truncation would otherwise
// alias them onto cell zero.
func cellOpen(g maze.Grid, fx, fy float64) bool {
	if fx < 0 || fy < 0 {
		return false
	}
	return g.OpenAt(int(fx), int(fy))
}
