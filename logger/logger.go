package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Logger is the leveled sink for game events: everything goes to a
// timestamped file under the log directory, warnings and errors mirror to
// stderr. Logging never affects control flow, and construction never fails
// hard: if the directory or file cannot be created the logger degrades to
// stderr only.
type Logger struct {
	file    *log.Logger
	console *log.Logger
	closer  io.Closer
}

// New opens a log file named maze3d_YYYYMMDD_HHMMSS.log under dir.
func New(dir string) *Logger {
	l := &Logger{console: log.New(os.Stderr, "", log.LstdFlags)}

	if err := os.MkdirAll(dir, 0755); err != nil {
		l.console.Printf("WARN  log directory unavailable, logging to stderr only: %v", err)
		return l
	}
	// Only the timestamp goes through Format; a literal prefix would have
	// its digits reinterpreted as layout verbs.
	name := "maze3d_" + time.Now().Format("20060102_150405") + ".log"
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		l.console.Printf("WARN  log file unavailable, logging to stderr only: %v", err)
		return l
	}
	l.file = log.New(f, "", log.LstdFlags)
	l.closer = f
	return l
}

// Close releases the log file, if any.
func (l *Logger) Close() {
	if l != nil && l.closer != nil {
		l.closer.Close()
	}
}

func (l *Logger) write(level, format string, args ...any) {
	if l == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.file != nil {
		l.file.Printf("%-5s %s", level, msg)
	}
	if level == "WARN" || level == "ERROR" || l.file == nil {
		l.console.Printf("%-5s %s", level, msg)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.write("DEBUG", format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.write("INFO", format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.write("WARN", format, args...) }
func (l *Logger) Error(format string, args ...any) { l.write("ERROR", format, args...) }

// Session event helpers, mirrored by the statistics and menu collaborators.

func (l *Logger) GameStart(player, difficulty string) {
	l.Info("game start - player: %s, difficulty: %s", player, difficulty)
}

func (l *Logger) GameCompleted(player, difficulty string, seconds float64) {
	l.Info("game completed - player: %s, difficulty: %s, time: %.2fs", player, difficulty, seconds)
}

func (l *Logger) GameAborted(player, difficulty string) {
	l.Info("game aborted - player: %s, difficulty: %s", player, difficulty)
}

func (l *Logger) ScreenTransition(from, to string) {
	l.Info("screen transition: %s -> %s", from, to)
}
