package game

import "fmt"

// Difficulty selects a Profile at session start.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty maps a difficulty label to its enumeration value.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// Profile bundles the tunables a difficulty selects. Immutable.
type Profile struct {
	MapSize     int
	MoveSpeed   float64 // cells per tick
	ShowMinimap bool
}

var profiles = [3]Profile{
	Easy:   {MapSize: 15, MoveSpeed: 0.10, ShowMinimap: true},
	Medium: {MapSize: 21, MoveSpeed: 0.08, ShowMinimap: true},
	Hard:   {MapSize: 25, MoveSpeed: 0.06, ShowMinimap: false},
}

// Profile returns the fixed profile for d.
func (d Difficulty) Profile() Profile {
	if int(d) >= len(profiles) {
		return profiles[Easy]
	}
	return profiles[d]
}
