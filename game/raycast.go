package game

import (
	"errors"
	"math"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
)

// ErrEmptyGrid is the cast fault for a sweep over a zero-sized grid.
var ErrEmptyGrid = errors.New("raycast: empty grid")

// CastRay marches a ray from (originX, originY) along angle in fixed
// RayStep increments and returns the Euclidean distance traveled when the
// ray enters a wall cell, reaches MaxDepth, or leaves the grid. A ray that
// exits the grid returns the distance traveled so far, not MaxDepth.
//
// This is an approximate march, not exact voxel traversal: a hit can
// overshoot the true wall face by up to one step. The error is far below one
// cell and invisible at render scale; the simplicity is deliberate.
func CastRay(g maze.Grid, originX, originY, angle float64) float64 {
	stepX := math.Cos(angle) * constants.RayStep
	stepY := math.Sin(angle) * constants.RayStep

	x, y := originX, originY
	dist := 0.0

	for dist < constants.MaxDepth {
		x += stepX
		y += stepY
		dist = math.Hypot(x-originX, y-originY)

		mx, my := int(x), int(y)
		if x < 0 || y < 0 || !g.InBounds(mx, my) {
			return dist
		}
		if g.At(mx, my) == maze.Wall {
			break
		}
	}

	return math.Min(dist, constants.MaxDepth)
}

// Sweep casts one ray per viewport column into distances, with ray angles
// linearly interpolated across the field of view centered on the heading.
// Each angle is normalized to [0, 2π) before casting.
func Sweep(g maze.Grid, pose Pose, distances []float64) error {
	if g.Size() == 0 {
		return ErrEmptyGrid
	}

	w := len(distances)
	for col := 0; col < w; col++ {
		angle := NormalizeAngle(pose.Heading - constants.HalfFOV + (float64(col)/float64(w))*constants.FOV)
		distances[col] = CastRay(g, pose.X, pose.Y, angle)
	}
	return nil
}
