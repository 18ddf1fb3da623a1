package render

import (
	"github.com/lixenwraith/maze3d/maze"
)

// Context carries the per-session presentation state into every render call,
// passed by value. There is no package-level display or font state; anything
// a renderer needs arrives through the Context or the call arguments.
type Context struct {
	Width  int
	Height int

	Player     string
	Difficulty string

	ShowMinimap bool
	Exit        maze.Point
}
