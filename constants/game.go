package constants

import "math"

// Raycasting
const (
	// FOV is the horizontal field of view of the projected 3D view
	FOV = math.Pi / 3

	// HalfFOV is the angular offset of the leftmost ray from the heading
	HalfFOV = FOV / 2

	// MaxDepth is the maximum ray travel distance in grid-cell units
	MaxDepth = 20.0

	// RayStep is the fixed march increment per ray step. A hit can overshoot
	// the true wall face by up to one step; the error stays well under one
	// cell at viewing distances.
	RayStep = 0.02
)

// Movement
const (
	// RotationSpeed is the heading change per tick while a turn key is held (radians)
	RotationSpeed = 0.04

	// StartX, StartY is the fixed interior start position of every session
	StartX = 1.5
	StartY = 1.5
)

// Projection
const (
	// WallHeightMultiplier caps projected wall slabs at this many screen heights,
	// avoiding degenerate slivers when a ray terminates almost at the viewer
	WallHeightMultiplier = 5

	// DistanceFade is the per-cell brightness falloff applied to wall columns
	DistanceFade = 20.0

	// MinBrightness keeps far walls visible instead of fading to black
	MinBrightness = 50

	// MaxBrightness is the full wall brightness at zero distance
	MaxBrightness = 255
)

// Minimap
const (
	// MinimapSize is the overlay edge length in screen cells; the per-cell
	// scale is MinimapSize divided by the grid size, floored at one
	MinimapSize = 25

	// MinimapHeadingLength is the length of the player direction indicator
	MinimapHeadingLength = 3.0
)
