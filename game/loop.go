package game

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/constants"
	"github.com/lixenwraith/maze3d/input"
	"github.com/lixenwraith/maze3d/logger"
	"github.com/lixenwraith/maze3d/render"
)

// Outcome reports how a session ended: Completed with the win time, or
// Aborted with the sentinel value.
type Outcome struct {
	State   State
	Seconds float64
}

// Run drives one session at the fixed tick cadence: drain input, advance the
// simulation, render, present. Within a tick input is fully applied before
// the frame is composed, so the renderer always reads a final pose.
//
// Any fault in the tick body is recovered here and turns into a clean abort
// with the sentinel outcome; the loop never lets a session crash the shell.
func Run(screen tcell.Screen, s *Session, log *logger.Logger) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("game loop fault, aborting session: %v", r)
			s.Abort()
			s.Terminate()
			out = Outcome{State: StateAborted, Seconds: SentinelAborted}
		}
	}()

	log.GameStart(s.Player, s.Difficulty.String())
	if s.GridFallback {
		log.Warn("maze generation fell back to the bordered room")
	}

	width, height := screen.Size()
	buf := render.NewBuffer(width, height)
	ctx := renderContext(s, width, height)
	distances := make([]float64, width)

	keys := input.NewState()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})

	// repost returns an event the session will never read to the screen
	// queue, so the menu sees it after the handoff. The interrupt marker
	// itself is dropped.
	repost := func(ev tcell.Event) {
		if _, ok := ev.(*tcell.EventInterrupt); !ok {
			_ = screen.PostEvent(ev)
		}
	}

	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-done:
				repost(ev)
				return
			default:
			}
			select {
			case events <- ev:
			case <-done:
				repost(ev)
				return
			}
		}
	}()
	// Handoff: wake a poller parked in PollEvent with an interrupt, then
	// return everything still buffered so the menu loses no keystroke.
	defer func() {
		close(done)
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		for ev := range events {
			repost(ev)
		}
	}()

	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	for s.State() == StateRunning {
		now := <-ticker.C

		quit := false
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					quit = true
					break drain
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if keys.HandleKey(ev, now) {
						quit = true
					}
				case *tcell.EventResize:
					width, height = ev.Size()
					buf.Resize(width, height)
					ctx = renderContext(s, width, height)
					distances = make([]float64, width)
				}
			default:
				break drain
			}
		}
		if quit {
			s.Abort()
			break
		}

		s.Advance(keys.Actions(now))
		if s.State() == StateCompleted {
			break
		}

		drawFrame(buf, ctx, s, distances, log)
		buf.Flush(screen)
	}

	if s.State() == StateCompleted {
		seconds := s.CompletionTime()
		log.GameCompleted(s.Player, s.Difficulty.String(), seconds)
		render.Summary(buf, ctx, seconds)
		buf.Flush(screen)
		waitForKey(events)
		s.Terminate()
		return Outcome{State: StateCompleted, Seconds: seconds}
	}

	log.GameAborted(s.Player, s.Difficulty.String())
	s.Terminate()
	return Outcome{State: StateAborted, Seconds: SentinelAborted}
}

// waitForKey blocks until any key press or the event stream closes. This is
// the single modal wait in the loop: the post-completion summary screen.
func waitForKey(events <-chan tcell.Event) {
	for ev := range events {
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}

// drawFrame composes one frame. A sweep or view fault is logged and replaced
// with the error indicator frame; the session keeps running.
func drawFrame(buf *render.Buffer, ctx render.Context, s *Session, distances []float64, log *logger.Logger) {
	if err := Sweep(s.Grid, s.Pose, distances); err != nil {
		log.Error("ray sweep fault: %v", err)
		render.ErrorFrame(buf, ctx)
		return
	}
	if err := render.View(buf, ctx, distances, s.Pose.Heading); err != nil {
		log.Error("render fault: %v", err)
		render.ErrorFrame(buf, ctx)
		return
	}
	render.Minimap(buf, ctx, s.Grid, s.Pose.X, s.Pose.Y, s.Pose.Heading, s.Elapsed())
	render.Controls(buf, ctx)
}

func renderContext(s *Session, width, height int) render.Context {
	return render.Context{
		Width:       width,
		Height:      height,
		Player:      s.Player,
		Difficulty:  s.Difficulty.String(),
		ShowMinimap: s.Profile.ShowMinimap,
		Exit:        s.Exit,
	}
}
