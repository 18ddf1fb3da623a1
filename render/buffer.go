package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composited screen cell.
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is an off-screen cell compositor with touch tracking. Renderers
// write cells; Flush pushes the whole composited frame to the terminal in
// one pass, so a frame is never presented half-drawn.
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewBuffer creates a buffer with the specified dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{width: width, height: height}
	b.cells = make([]Cell, width*height)
	b.touched = make([]bool, width*height)
	b.Clear()
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Resize adjusts buffer dimensions, reallocating only when capacity is
// insufficient, then clears.
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to an untouched blank.
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RGBWhite, Bg: RGBBlack}
	b.touched[0] = false
	// Exponential copy
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a full cell (rune, foreground, background).
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// SetFg writes rune and foreground while preserving the existing background.
func (b *Buffer) SetFg(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Rune = r
	b.cells[idx].Fg = fg
	b.touched[idx] = true
}

// FillRect fills a rectangle with a background color, blanking the runes.
// Out-of-bounds portions are clipped.
func (b *Buffer) FillRect(x, y, w, h int, bg RGB) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Set(xx, yy, ' ', RGBWhite, bg)
		}
	}
}

// Text blits a string left-to-right starting at (x, y), preserving the
// background under each glyph.
func (b *Buffer) Text(x, y int, s string, fg RGB) {
	col := x
	for _, r := range s {
		b.SetFg(col, y, r, fg)
		col++
	}
}

// TextCentered blits a string centered on the buffer width at row y.
func (b *Buffer) TextCentered(y int, s string, fg RGB) {
	b.Text((b.width-len([]rune(s)))/2, y, s, fg)
}

// At returns the composited cell at (x, y); out of bounds reads as blank.
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' ', Fg: RGBWhite, Bg: RGBBlack}
	}
	return b.cells[y*b.width+x]
}

// Equal reports whether two buffers hold identical composited frames.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Flush writes the composited frame to the terminal and shows it.
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			st := tcell.StyleDefault.Foreground(c.Fg.Color()).Background(c.Bg.Color())
			screen.SetContent(x, y, c.Rune, nil, st)
		}
	}
	screen.Show()
}
