package render

import "testing"

func TestBufferSetAndAt(t *testing.T) {
	b := NewBuffer(10, 5)
	b.Set(3, 2, '#', RGBRed, RGBBlack)

	got := b.At(3, 2)
	if got.Rune != '#' || got.Fg != RGBRed || got.Bg != RGBBlack {
		t.Errorf("cell = %+v", got)
	}
}

func TestBufferOutOfBoundsIgnored(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Set(-1, 0, 'x', RGBWhite, RGBBlack)
	b.Set(4, 0, 'x', RGBWhite, RGBBlack)
	b.Set(0, 4, 'x', RGBWhite, RGBBlack)

	if c := b.At(-1, 0); c.Rune != ' ' {
		t.Errorf("out-of-bounds read = %+v, want blank", c)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if b.At(x, y).Rune != ' ' {
				t.Errorf("cell (%d,%d) written by out-of-bounds Set", x, y)
			}
		}
	}
}

func TestBufferSetFgPreservesBackground(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Set(1, 1, ' ', RGBWhite, RGBGreen)
	b.SetFg(1, 1, '@', RGBRed)

	got := b.At(1, 1)
	if got.Rune != '@' || got.Fg != RGBRed || got.Bg != RGBGreen {
		t.Errorf("cell = %+v, want '@' red on green", got)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(8, 3)
	b.FillRect(0, 0, 8, 3, RGBRed)
	b.Clear()

	blank := Cell{Rune: ' ', Fg: RGBWhite, Bg: RGBBlack}
	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			if b.At(x, y) != blank {
				t.Fatalf("cell (%d,%d) = %+v after Clear", x, y, b.At(x, y))
			}
		}
	}
}

func TestBufferResize(t *testing.T) {
	b := NewBuffer(10, 10)
	b.Set(9, 9, '#', RGBWhite, RGBBlack)

	b.Resize(5, 3)
	if w, h := b.Size(); w != 5 || h != 3 {
		t.Fatalf("size = %dx%d, want 5x3", w, h)
	}
	if c := b.At(4, 2); c.Rune != ' ' {
		t.Errorf("resize did not clear: %+v", c)
	}

	b.Resize(20, 6)
	if w, h := b.Size(); w != 20 || h != 6 {
		t.Fatalf("size = %dx%d, want 20x6", w, h)
	}
}

func TestBufferTextCentered(t *testing.T) {
	b := NewBuffer(11, 1)
	b.TextCentered(0, "abc", RGBYellow)

	if b.At(4, 0).Rune != 'a' || b.At(5, 0).Rune != 'b' || b.At(6, 0).Rune != 'c' {
		t.Errorf("text not centered: %q %q %q",
			b.At(4, 0).Rune, b.At(5, 0).Rune, b.At(6, 0).Rune)
	}
}

func TestBufferEqual(t *testing.T) {
	a := NewBuffer(6, 4)
	b := NewBuffer(6, 4)
	if !a.Equal(b) {
		t.Error("fresh buffers not equal")
	}

	a.Set(2, 2, '#', RGBWhite, RGBBlack)
	if a.Equal(b) {
		t.Error("diverged buffers reported equal")
	}

	c := NewBuffer(4, 6)
	if a.Equal(c) {
		t.Error("different dimensions reported equal")
	}
}
