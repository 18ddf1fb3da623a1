// Package tui holds the two widgets the menu shell needs: a cursor list and
// a single-line text field. Both draw into a render.Buffer and hold their own
// interaction state; the shell feeds them key events.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/render"
)

// ListStyle configures list colors.
type ListStyle struct {
	TextFg   render.RGB
	CursorFg render.RGB
	CursorBg render.RGB
}

// DefaultListStyle returns the menu palette.
func DefaultListStyle() ListStyle {
	return ListStyle{
		TextFg:   render.RGBWhite,
		CursorFg: render.RGBBlack,
		CursorBg: render.RGBYellow,
	}
}

// List is a vertical menu with a wrapping cursor.
type List struct {
	Items  []string
	Cursor int
	Style  ListStyle
}

// NewList builds a list with the cursor on the first item.
func NewList(items ...string) *List {
	return &List{Items: items, Style: DefaultListStyle()}
}

// HandleKey moves the cursor. It returns (selected index, true) on Enter and
// (-1, false) otherwise. The cursor wraps at both ends.
func (l *List) HandleKey(ev *tcell.EventKey) (int, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		l.Cursor--
		if l.Cursor < 0 {
			l.Cursor = len(l.Items) - 1
		}
	case tcell.KeyDown:
		l.Cursor++
		if l.Cursor >= len(l.Items) {
			l.Cursor = 0
		}
	case tcell.KeyEnter:
		return l.Cursor, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			l.Cursor--
			if l.Cursor < 0 {
				l.Cursor = len(l.Items) - 1
			}
		case 'j':
			l.Cursor++
			if l.Cursor >= len(l.Items) {
				l.Cursor = 0
			}
		}
	}
	return -1, false
}

// Draw renders the list starting at (x, y), one item per row. The cursor row
// gets the highlight colors and a pointer glyph.
func (l *List) Draw(buf *render.Buffer, x, y int) {
	for i, item := range l.Items {
		if i == l.Cursor {
			w := len([]rune(item)) + 2
			buf.FillRect(x, y+i, w, 1, l.Style.CursorBg)
			buf.SetFg(x, y+i, '▶', l.Style.CursorFg)
			buf.Text(x+2, y+i, item, l.Style.CursorFg)
			continue
		}
		buf.Text(x+2, y+i, item, l.Style.TextFg)
	}
}
