package game

import (
	"math"
	"time"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/input"
	"github.com/lixenwraith/maze3d/maze"
)

// Pose is a continuous position in grid-cell units plus a heading.
// Heading is kept normalized to [0, 2π).
type Pose struct {
	X, Y    float64
	Heading float64
}

// NormalizeAngle wraps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// State is the session lifecycle.
type State uint8

const (
	StateRunning State = iota
	StateCompleted
	StateAborted
	StateTerminated
)

// SentinelAborted is the completion value reported for any session that did
// not finish with a win.
const SentinelAborted = -1

// Session owns all simulation state for one run: the grid, the pose, the
// timer and the completion flag. It is created at session start, mutated only
// by Advance, and discarded when the loop returns.
type Session struct {
	Player     string
	Difficulty Difficulty
	Profile    Profile
	Grid       maze.Grid
	Exit       maze.Point
	Pose       Pose

	// GridFallback is set when generation recovered into the bordered room.
	GridFallback bool

	state      State
	start      time.Time
	won        bool
	completion float64
}

// NewSession builds the session state for one run. Seed 0 generates a random
// maze; a fixed seed reproduces the same grid.
func NewSession(player string, d Difficulty, seed int64) *Session {
	prof := d.Profile()
	res := maze.Generate(maze.Config{Size: prof.MapSize, Seed: seed})

	return &Session{
		Player:       player,
		Difficulty:   d,
		Profile:      prof,
		Grid:         res.Grid,
		Exit:         res.Exit,
		Pose:         Pose{X: constants.StartX, Y: constants.StartY},
		GridFallback: res.Fallback,
		state:        StateRunning,
		start:        time.Now(),
	}
}

func (s *Session) State() State {
	return s.state
}

// Elapsed returns wall-clock seconds since session start.
func (s *Session) Elapsed() float64 {
	return time.Since(s.start).Seconds()
}

// CompletionTime returns the recorded win time, or SentinelAborted while no
// win has been recorded. The flag is separate from the value so a win at
// zero elapsed still reads as a win.
func (s *Session) CompletionTime() float64 {
	if !s.won {
		return SentinelAborted
	}
	return s.completion
}

// Abort moves a running session to Aborted.
func (s *Session) Abort() {
	if s.state == StateRunning {
		s.state = StateAborted
	}
}

// Terminate is the final transition out of Completed or Aborted.
func (s *Session) Terminate() {
	s.state = StateTerminated
}

// Advance applies one tick of simulation: rotation, translation through the
// collision model, then the win check. The win check fires on the same tick
// the truncated pose coordinates first equal the exit cell.
func (s *Session) Advance(acts input.ActionSet) {
	if s.state != StateRunning {
		return
	}

	if acts.Has(input.TurnLeft) {
		s.Pose.Heading = NormalizeAngle(s.Pose.Heading - constants.RotationSpeed)
	}
	if acts.Has(input.TurnRight) {
		s.Pose.Heading = NormalizeAngle(s.Pose.Heading + constants.RotationSpeed)
	}

	dx, dy := MoveVector(s.Pose.Heading, s.Profile.MoveSpeed, acts)
	s.Pose = Move(s.Pose, s.Grid, dx, dy)

	if int(s.Pose.X) == s.Exit.X && int(s.Pose.Y) == s.Exit.Y {
		s.won = true
		s.completion = s.Elapsed()
		s.state = StateCompleted
	}
}
