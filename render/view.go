package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/maze3d/constants"
)

// FrameError is a recoverable per-frame render fault. The loop decides what
// to do with it (log and present ErrorFrame); View never panics.
type FrameError struct {
	Stage string
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Stage, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// View draws the projected 3D view: ceiling and floor fill, then one wall
// slab per column from the swept distances. Columns are independent; no
// horizontal blending. Purely presentational: identical inputs compose an
// identical frame.
func View(buf *Buffer, ctx Context, distances []float64, heading float64) error {
	if ctx.Width <= 0 || ctx.Height <= 0 {
		return &FrameError{Stage: "view", Err: fmt.Errorf("degenerate viewport %dx%d", ctx.Width, ctx.Height)}
	}
	if len(distances) != ctx.Width {
		return &FrameError{Stage: "view", Err: fmt.Errorf("%d distances for %d columns", len(distances), ctx.Width)}
	}

	half := ctx.Height / 2
	buf.FillRect(0, 0, ctx.Width, half, RGBDarkGray)
	buf.FillRect(0, half, ctx.Width, ctx.Height-half, RGBBrown)

	for col, dist := range distances {
		rayAngle := heading - constants.HalfFOV + (float64(col)/float64(ctx.Width))*constants.FOV

		// Fisheye correction: project the ray distance onto the view axis so
		// flat walls render flat.
		corrected := dist * math.Cos(heading-rayAngle)

		wallHeight := int(float64(ctx.Height) / (corrected + 0.0001))
		if wallHeight > ctx.Height*constants.WallHeightMultiplier {
			wallHeight = ctx.Height * constants.WallHeightMultiplier
		}
		top := (ctx.Height - wallHeight) / 2
		bottom := top + wallHeight

		color := columnColor(col, brightness(dist))
		shade := shadeRune(dist)

		for y := max(top, 0); y < min(bottom, ctx.Height); y++ {
			buf.Set(col, y, shade, color, RGBBlack)
		}
	}
	return nil
}

// brightness fades linearly with distance, clamped so far walls stay visible.
func brightness(dist float64) uint8 {
	v := constants.MaxBrightness - dist*constants.DistanceFade
	if v < constants.MinBrightness {
		v = constants.MinBrightness
	}
	if v > constants.MaxBrightness {
		v = constants.MaxBrightness
	}
	return uint8(v)
}

// columnColor cycles the hue emphasis red/green/blue by column index.
// Cosmetic only; it makes adjacent columns readable at terminal resolution.
func columnColor(col int, v uint8) RGB {
	switch col % 3 {
	case 0:
		return RGB{v, v / 3, v / 3}
	case 1:
		return RGB{v / 3, v, v / 3}
	default:
		return RGB{v / 3, v / 3, v}
	}
}

// shadeRune picks a block glyph by distance band, nearest densest.
func shadeRune(dist float64) rune {
	switch {
	case dist <= constants.MaxDepth/4:
		return '█'
	case dist <= constants.MaxDepth/2:
		return '▓'
	case dist <= constants.MaxDepth*3/4:
		return '▒'
	default:
		return '░'
	}
}

// ErrorFrame replaces the view for one tick after a recovered render or cast
// fault: black screen with a centered indicator.
func ErrorFrame(buf *Buffer, ctx Context) {
	buf.FillRect(0, 0, ctx.Width, ctx.Height, RGBBlack)
	buf.TextCentered(ctx.Height/2, "RENDER ERROR", RGBRed)
}
