// Package audio plays short generated tone cues for menu and game events.
// Everything is best-effort: if the speaker cannot initialize the cues
// silently no-op and the game runs without sound.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues owns the speaker and exposes one method per game event.
type Cues struct {
	enabled bool
}

// NewCues initializes the speaker. A nil error does not guarantee sound;
// a failed init returns the error for logging and a muted Cues.
func NewCues(enable bool) (*Cues, error) {
	c := &Cues{}
	if !enable {
		return c, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.enabled = true
	return c, nil
}

// MenuSelect is the short blip for cursor movement and selection.
func (c *Cues) MenuSelect() {
	c.tone(880, 40*time.Millisecond)
}

// Win is the two-note rising cue on session completion.
func (c *Cues) Win() {
	c.chord([]float64{660, 880}, 120*time.Millisecond)
}

// Abort is the single low cue when a session is abandoned.
func (c *Cues) Abort() {
	c.tone(220, 80*time.Millisecond)
}

func (c *Cues) tone(freq float64, d time.Duration) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (c *Cues) chord(freqs []float64, d time.Duration) {
	if !c.enabled {
		return
	}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			return
		}
		notes = append(notes, beep.Take(sampleRate.N(d), sine))
	}
	speaker.Play(beep.Seq(notes...))
}

// Close releases the speaker.
func (c *Cues) Close() {
	if c.enabled {
		speaker.Close()
	}
}
