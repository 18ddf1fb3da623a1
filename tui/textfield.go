package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/render"
)

// TextFieldStyle configures text field colors.
type TextFieldStyle struct {
	TextFg        render.RGB
	PlaceholderFg render.RGB
	CursorBg      render.RGB
}

// DefaultTextFieldStyle returns the menu palette.
func DefaultTextFieldStyle() TextFieldStyle {
	return TextFieldStyle{
		TextFg:        render.RGBWhite,
		PlaceholderFg: render.RGBGray,
		CursorBg:      render.RGBYellow,
	}
}

// TextField is a single-line rune editor with a length cap.
type TextField struct {
	Placeholder string
	MaxLen      int
	Style       TextFieldStyle

	runes []rune
}

// NewTextField builds an empty field capped at maxLen runes.
func NewTextField(placeholder string, maxLen int) *TextField {
	return &TextField{
		Placeholder: placeholder,
		MaxLen:      maxLen,
		Style:       DefaultTextFieldStyle(),
	}
}

// Text returns the current content.
func (f *TextField) Text() string {
	return string(f.runes)
}

// SetText replaces the content, truncated to MaxLen.
func (f *TextField) SetText(s string) {
	f.runes = []rune(s)
	if f.MaxLen > 0 && len(f.runes) > f.MaxLen {
		f.runes = f.runes[:f.MaxLen]
	}
}

// HandleKey edits the field. It returns true on Enter with non-empty content.
func (f *TextField) HandleKey(ev *tcell.EventKey) (done bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return len(f.runes) > 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(f.runes) > 0 {
			f.runes = f.runes[:len(f.runes)-1]
		}
	case tcell.KeyRune:
		r := ev.Rune()
		if r < ' ' {
			return false
		}
		if f.MaxLen > 0 && len(f.runes) >= f.MaxLen {
			return false
		}
		f.runes = append(f.runes, r)
	}
	return false
}

// Draw renders the field content or its placeholder at (x, y) with a block
// cursor after the rendered text.
func (f *TextField) Draw(buf *render.Buffer, x, y int) {
	if len(f.runes) == 0 {
		buf.Text(x, y, f.Placeholder, f.Style.PlaceholderFg)
		buf.Set(x+len([]rune(f.Placeholder)), y, ' ', f.Style.TextFg, f.Style.CursorBg)
		return
	}
	buf.Text(x, y, string(f.runes), f.Style.TextFg)
	buf.Set(x+len(f.runes), y, ' ', f.Style.TextFg, f.Style.CursorBg)
}
