package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/constants"
)

// Action is a semantic movement intent decoded from raw key events.
type Action uint8

const (
	Forward Action = iota
	Backward
	StrafeLeft
	StrafeRight
	TurnLeft
	TurnRight
	actionCount
)

// ActionSet is a bitmask of actions active on one tick.
type ActionSet uint8

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// With returns the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// State tracks which movement keys count as held.
//
// Terminal input reports key presses only, never releases, so a key is
// treated as held for constants.KeyHoldWindow after its last event; OS
// autorepeat keeps refreshing the window while the key stays physically down.
type State struct {
	last   [actionCount]time.Time
	window time.Duration
}

func NewState() *State {
	return &State{window: constants.KeyHoldWindow}
}

// HandleKey records a key event. It returns true when the event is a quit
// request (Escape or Ctrl-C); movement keys refresh their hold window.
func (s *State) HandleKey(ev *tcell.EventKey, now time.Time) (quit bool) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if a, ok := decodeAction(ev); ok {
		s.last[a] = now
	}
	return false
}

// Actions returns the set of actions whose hold window covers now.
func (s *State) Actions(now time.Time) ActionSet {
	var set ActionSet
	for a := Action(0); a < actionCount; a++ {
		if !s.last[a].IsZero() && now.Sub(s.last[a]) < s.window {
			set = set.With(a)
		}
	}
	return set
}

// decodeAction maps raw key events to movement actions. WASD-style keys plus
// arrows: W/Up forward, S/Down back, Q/E strafe, A/Left and D/Right turn.
func decodeAction(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return Forward, true
	case tcell.KeyDown:
		return Backward, true
	case tcell.KeyLeft:
		return TurnLeft, true
	case tcell.KeyRight:
		return TurnRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return Forward, true
		case 's', 'S':
			return Backward, true
		case 'q', 'Q':
			return StrafeLeft, true
		case 'e', 'E':
			return StrafeRight, true
		case 'a', 'A':
			return TurnLeft, true
		case 'd', 'D':
			return TurnRight, true
		}
	}
	return 0, false
}
