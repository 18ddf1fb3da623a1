package stats

import (
	"sort"
	"time"
)

// RecordVersion is stamped into every persisted record so a future format
// change can migrate old score logs.
const RecordVersion = 1

// Record is one finished run.
type Record struct {
	Version    int       `json:"version"`
	Player     string    `json:"player"`
	Difficulty string    `json:"difficulty"`
	Seconds    float64   `json:"seconds"`
	Date       time.Time `json:"date"`
}

// NewRecord stamps a completed run with the current version and timestamp.
func NewRecord(player, difficulty string, seconds float64) Record {
	return Record{
		Version:    RecordVersion,
		Player:     player,
		Difficulty: difficulty,
		Seconds:    seconds,
		Date:       time.Now(),
	}
}

// difficultyRank orders difficulties hardest first for the leaderboard.
func difficultyRank(d string) int {
	switch d {
	case "hard":
		return 3
	case "medium":
		return 2
	case "easy":
		return 1
	}
	return 0
}

// Sorted returns a copy ordered hardest difficulty first, then fastest time.
func Sorted(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := difficultyRank(out[i].Difficulty), difficultyRank(out[j].Difficulty)
		if ri != rj {
			return ri > rj
		}
		return out[i].Seconds < out[j].Seconds
	})
	return out
}

// ByDifficulty filters records to one difficulty label.
func ByDifficulty(records []Record, difficulty string) []Record {
	var out []Record
	for _, r := range records {
		if r.Difficulty == difficulty {
			out = append(out, r)
		}
	}
	return out
}

// ByPlayer filters records to one player name.
func ByPlayer(records []Record, player string) []Record {
	var out []Record
	for _, r := range records {
		if r.Player == player {
			out = append(out, r)
		}
	}
	return out
}
