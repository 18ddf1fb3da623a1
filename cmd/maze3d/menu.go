package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/audio"
	"github.com/lixenwraith/maze3d/config"
	"github.com/lixenwraith/maze3d/game"
	"github.com/lixenwraith/maze3d/logger"
	"github.com/lixenwraith/maze3d/render"
	"github.com/lixenwraith/maze3d/stats"
	"github.com/lixenwraith/maze3d/tui"
)

const maxNameLen = 16

// shell is the menu state machine wrapped around game sessions. Each screen
// owns its own event loop; a session hands the terminal back when it ends.
type shell struct {
	screen tcell.Screen
	cfg    config.Config
	log    *logger.Logger
	store  stats.Store
	cues   *audio.Cues
	buf    *render.Buffer
}

func newShell(screen tcell.Screen, cfg config.Config, log *logger.Logger, store stats.Store, cues *audio.Cues) *shell {
	w, h := screen.Size()
	return &shell{
		screen: screen,
		cfg:    cfg,
		log:    log,
		store:  store,
		cues:   cues,
		buf:    render.NewBuffer(w, h),
	}
}

func (sh *shell) run() {
	for {
		switch sh.mainMenu() {
		case 0:
			name, ok := sh.promptName()
			if !ok {
				continue
			}
			diff, ok := sh.chooseDifficulty()
			if !ok {
				continue
			}
			sh.play(name, diff)
		case 1:
			sh.showStats()
		default:
			return
		}
	}
}

// poll blocks for the next event, absorbing resizes into the buffer.
func (sh *shell) poll() tcell.Event {
	for {
		ev := sh.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			sh.buf.Resize(w, h)
			sh.screen.Sync()
		case *tcell.EventInterrupt:
			// Poller handoff marker from an ended session.
		default:
			return ev
		}
	}
}

func (sh *shell) title(sub string) {
	sh.buf.Clear()
	sh.buf.TextCentered(2, "M A Z E 3 D", render.RGBYellow)
	if sub != "" {
		sh.buf.TextCentered(4, sub, render.RGBGray)
	}
}

// mainMenu returns the selected entry index, or -1 on quit.
func (sh *shell) mainMenu() int {
	list := tui.NewList("Play", "Statistics", "Quit")

	for {
		sh.title("arrows or j/k to move, Enter to select")
		_, h := sh.buf.Size()
		list.Draw(sh.buf, 6, h/2-1)
		sh.buf.Flush(sh.screen)

		ev := sh.poll()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if ev == nil {
				return -1
			}
			continue
		}
		if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
			return -1
		}
		if idx, selected := list.HandleKey(key); selected {
			sh.cues.MenuSelect()
			if idx == 2 {
				return -1
			}
			return idx
		}
	}
}

// promptName collects the player name. Escape cancels back to the menu.
func (sh *shell) promptName() (string, bool) {
	sh.log.ScreenTransition("menu", "name entry")
	field := tui.NewTextField("player", maxNameLen)

	for {
		sh.title("Enter your name")
		_, h := sh.buf.Size()
		field.Draw(sh.buf, 6, h/2)
		sh.buf.Flush(sh.screen)

		ev := sh.poll()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if ev == nil {
				return "", false
			}
			continue
		}
		if key.Key() == tcell.KeyEscape {
			sh.log.ScreenTransition("name entry", "menu")
			return "", false
		}
		if field.HandleKey(key) {
			sh.cues.MenuSelect()
			return field.Text(), true
		}
	}
}

// chooseDifficulty returns the selected difficulty. Escape cancels.
func (sh *shell) chooseDifficulty() (game.Difficulty, bool) {
	sh.log.ScreenTransition("name entry", "difficulty select")
	list := tui.NewList(
		"Easy    (15x15, minimap)",
		"Medium  (21x21, minimap)",
		"Hard    (25x25, no minimap)",
	)

	for {
		sh.title("Choose difficulty")
		_, h := sh.buf.Size()
		list.Draw(sh.buf, 6, h/2-1)
		sh.buf.Flush(sh.screen)

		ev := sh.poll()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if ev == nil {
				return game.Easy, false
			}
			continue
		}
		if key.Key() == tcell.KeyEscape {
			return game.Easy, false
		}
		if idx, selected := list.HandleKey(key); selected {
			sh.cues.MenuSelect()
			return game.Difficulty(idx), true
		}
	}
}

// play runs one session and records a completed run.
func (sh *shell) play(name string, diff game.Difficulty) {
	sh.log.ScreenTransition("difficulty select", "game")
	session := game.NewSession(name, diff, sh.cfg.Seed)

	out := game.Run(sh.screen, session, sh.log)
	sh.log.ScreenTransition("game", "menu")

	switch out.State {
	case game.StateCompleted:
		sh.cues.Win()
		rec := stats.NewRecord(name, diff.String(), out.Seconds)
		if err := sh.store.Add(rec); err != nil {
			sh.log.Error("failed to record run: %v", err)
		}
	default:
		sh.cues.Abort()
	}

	// The session drew over the whole terminal.
	w, h := sh.screen.Size()
	sh.buf.Resize(w, h)
}

// showStats renders the score table: hardest difficulty first, fastest time
// within a difficulty. C clears the log after confirmation.
func (sh *shell) showStats() {
	sh.log.ScreenTransition("menu", "statistics")

	for {
		records, err := sh.store.All()
		if err != nil {
			sh.log.Error("failed to read score log: %v", err)
		}
		records = stats.Sorted(records)

		sh.title("Escape to return, C to clear the log")
		sh.buf.Text(4, 6, fmt.Sprintf("%-4s %-16s %-10s %10s  %s", "#", "PLAYER", "DIFFICULTY", "TIME", "DATE"), render.RGBYellow)

		_, h := sh.buf.Size()
		maxRows := h - 8
		for i, r := range records {
			if i >= maxRows {
				break
			}
			line := fmt.Sprintf("%-4d %-16s %-10s %9.2fs  %s",
				i+1, r.Player, r.Difficulty, r.Seconds, r.Date.Format("2006-01-02 15:04"))
			sh.buf.Text(4, 7+i, line, render.RGBWhite)
		}
		if len(records) == 0 {
			sh.buf.Text(4, 7, "No completed runs yet.", render.RGBGray)
		}
		sh.buf.Flush(sh.screen)

		ev := sh.poll()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if ev == nil {
				return
			}
			continue
		}
		switch {
		case key.Key() == tcell.KeyEscape:
			sh.log.ScreenTransition("statistics", "menu")
			return
		case key.Key() == tcell.KeyRune && (key.Rune() == 'c' || key.Rune() == 'C'):
			if sh.confirmClear() {
				if err := sh.store.Clear(); err != nil {
					sh.log.Error("failed to clear score log: %v", err)
				} else {
					sh.log.Info("score log cleared")
				}
			}
		}
	}
}

// confirmClear is the y/n modal for destroying the score log.
func (sh *shell) confirmClear() bool {
	sh.title("")
	_, h := sh.buf.Size()
	sh.buf.TextCentered(h/2, "Clear the entire score log? (y/n)", render.RGBRed)
	sh.buf.Flush(sh.screen)

	for {
		ev := sh.poll()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			if ev == nil {
				return false
			}
			continue
		}
		if key.Key() == tcell.KeyRune && (key.Rune() == 'y' || key.Rune() == 'Y') {
			return true
		}
		return false
	}
}
