package render

import (
	"errors"
	"testing"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/maze"
)

func viewContext(w, h int) Context {
	return Context{
		Width:       w,
		Height:      h,
		Player:      "tester",
		Difficulty:  "easy",
		ShowMinimap: true,
		Exit:        maze.Point{X: 3, Y: 3},
	}
}

func uniformDistances(w int, d float64) []float64 {
	out := make([]float64, w)
	for i := range out {
		out[i] = d
	}
	return out
}

// TestViewIdempotent renders the same inputs into two buffers and expects
// identical frames.
func TestViewIdempotent(t *testing.T) {
	ctx := viewContext(40, 20)
	distances := uniformDistances(40, 3.0)

	a, b := NewBuffer(40, 20), NewBuffer(40, 20)
	if err := View(a, ctx, distances, 1.2); err != nil {
		t.Fatalf("View: %v", err)
	}
	if err := View(b, ctx, distances, 1.2); err != nil {
		t.Fatalf("View: %v", err)
	}
	if !a.Equal(b) {
		t.Error("identical inputs composed different frames")
	}
}

// TestViewNearWallFillsColumn verifies a very close wall covers the full
// column height on the center column.
func TestViewNearWallFillsColumn(t *testing.T) {
	ctx := viewContext(41, 20)
	distances := uniformDistances(41, 0.1)

	buf := NewBuffer(41, 20)
	if err := View(buf, ctx, distances, 0); err != nil {
		t.Fatalf("View: %v", err)
	}
	for y := 0; y < 20; y++ {
		if buf.At(20, y).Rune == ' ' {
			t.Fatalf("row %d of center column not a wall slab", y)
		}
	}
}

// TestViewFarWallLeavesCeilingAndFloor verifies a distant wall draws a short
// slab with ceiling above and floor below.
func TestViewFarWallLeavesCeilingAndFloor(t *testing.T) {
	ctx := viewContext(41, 20)
	distances := uniformDistances(41, constants.MaxDepth)

	buf := NewBuffer(41, 20)
	if err := View(buf, ctx, distances, 0); err != nil {
		t.Fatalf("View: %v", err)
	}
	if top := buf.At(20, 0); top.Bg != RGBDarkGray {
		t.Errorf("top row = %+v, want ceiling fill", top)
	}
	if bottom := buf.At(20, 19); bottom.Bg != RGBBrown {
		t.Errorf("bottom row = %+v, want floor fill", bottom)
	}
	slab := ' '
	for y := 0; y < 20; y++ {
		if r := buf.At(20, y).Rune; r != ' ' {
			slab = r
			break
		}
	}
	if slab != '░' {
		t.Errorf("slab rune %q, want faintest shade at max depth", slab)
	}
}

func TestViewDistanceCountMismatch(t *testing.T) {
	ctx := viewContext(40, 20)
	buf := NewBuffer(40, 20)

	err := View(buf, ctx, uniformDistances(39, 1), 0)
	var fe *FrameError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want FrameError", err)
	}
}

func TestViewDegenerateViewport(t *testing.T) {
	buf := NewBuffer(0, 0)
	if err := View(buf, viewContext(0, 0), nil, 0); err == nil {
		t.Error("degenerate viewport accepted")
	}
}

func TestBrightnessClamps(t *testing.T) {
	if got := brightness(0); got != constants.MaxBrightness {
		t.Errorf("brightness(0) = %d, want %d", got, constants.MaxBrightness)
	}
	if got := brightness(constants.MaxDepth * 2); got != constants.MinBrightness {
		t.Errorf("far brightness = %d, want floor %d", got, constants.MinBrightness)
	}
}

func TestShadeRuneBands(t *testing.T) {
	cases := []struct {
		dist float64
		want rune
	}{
		{1, '█'},
		{constants.MaxDepth/4 + 0.1, '▓'},
		{constants.MaxDepth/2 + 0.1, '▒'},
		{constants.MaxDepth, '░'},
	}
	for _, tc := range cases {
		if got := shadeRune(tc.dist); got != tc.want {
			t.Errorf("shadeRune(%g) = %q, want %q", tc.dist, got, tc.want)
		}
	}
}

func TestErrorFrame(t *testing.T) {
	ctx := viewContext(40, 10)
	buf := NewBuffer(40, 10)
	ErrorFrame(buf, ctx)

	found := false
	for x := 0; x < 40; x++ {
		if buf.At(x, 5).Rune == 'R' {
			found = true
			break
		}
	}
	if !found {
		t.Error("error indicator text not drawn on center row")
	}
}
