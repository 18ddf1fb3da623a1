package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color; the terminal flush maps it to a tcell color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Palette shared by the view, minimap and menu screens.
var (
	RGBBlack    = RGB{0, 0, 0}
	RGBWhite    = RGB{255, 255, 255}
	RGBRed      = RGB{255, 0, 0}
	RGBGreen    = RGB{0, 255, 0}
	RGBYellow   = RGB{255, 255, 0}
	RGBGray     = RGB{100, 100, 100}
	RGBDarkGray = RGB{50, 50, 50}
	RGBBrown    = RGB{139, 69, 19}
	RGBMapBack  = RGB{40, 40, 40}
)
