package game

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/logger"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	scr.SetSize(80, 24)
	t.Cleanup(scr.Fini)
	return scr
}

// TestRunAbortsOnEscape drives a full loop against a simulation screen and
// ends it with Escape.
func TestRunAbortsOnEscape(t *testing.T) {
	scr := newSimScreen(t)
	s := NewSession("tester", Easy, 7)
	log := logger.New(t.TempDir())
	defer log.Close()

	outCh := make(chan Outcome, 1)
	go func() { outCh <- Run(scr, s, log) }()

	time.Sleep(50 * time.Millisecond)
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case out := <-outCh:
		if out.State != StateAborted {
			t.Errorf("state %v, want StateAborted", out.State)
		}
		if out.Seconds != SentinelAborted {
			t.Errorf("seconds %g, want sentinel %d", out.Seconds, SentinelAborted)
		}
		if s.State() != StateTerminated {
			t.Errorf("session state %v, want StateTerminated", s.State())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not return after Escape")
	}
}

// TestRunHandsEventStreamBack verifies no keystroke is lost at session end:
// a key arriving while the loop's poller winds down must still reach the
// next PollEvent caller.
func TestRunHandsEventStreamBack(t *testing.T) {
	scr := newSimScreen(t)
	s := NewSession("tester", Easy, 7)
	log := logger.New(t.TempDir())
	defer log.Close()

	outCh := make(chan Outcome, 1)
	go func() { outCh <- Run(scr, s, log) }()

	time.Sleep(50 * time.Millisecond)
	scr.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case <-outCh:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not return after Escape")
	}

	scr.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)

	got := make(chan rune, 1)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				got <- key.Rune()
				return
			}
		}
	}()

	select {
	case r := <-got:
		if r != 'x' {
			t.Errorf("next event rune %q, want 'x'", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("keystroke lost during session handoff")
	}
}

// TestRunCompletesAtExit starts the session already inside the exit cell, so
// the first tick wins, then dismisses the summary screen with a key press.
func TestRunCompletesAtExit(t *testing.T) {
	scr := newSimScreen(t)
	s := NewSession("tester", Easy, 7)
	s.start = time.Now().Add(-time.Second)
	s.Pose = Pose{X: float64(s.Exit.X) + 0.5, Y: float64(s.Exit.Y) + 0.5}
	log := logger.New(t.TempDir())
	defer log.Close()

	outCh := make(chan Outcome, 1)
	go func() { outCh <- Run(scr, s, log) }()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case out := <-outCh:
			if out.State != StateCompleted {
				t.Fatalf("state %v, want StateCompleted", out.State)
			}
			if out.Seconds <= 0 {
				t.Errorf("seconds %g, want > 0", out.Seconds)
			}
			if s.State() != StateTerminated {
				t.Errorf("session state %v, want StateTerminated", s.State())
			}
			return
		case <-deadline:
			t.Fatal("loop did not return after completion")
		default:
			// Keep nudging until the summary screen consumes a key.
			scr.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
			time.Sleep(20 * time.Millisecond)
		}
	}
}
