// Package navigation is the thin layer between screens: a Session owned by a
// Controller, an explicit table of allowed mode transitions with their
// enter/exit hooks, a cancellable title-screen background generator, and
// elapsed-time formatting for the play stopwatch.
//
// There is no package-level state. Everything a screen needs travels in the
// Session passed to hooks.
package navigation

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/hexlace/level"
)

var (
	// ErrInvalidTransition indicates a (from, to) pair missing from the table.
	ErrInvalidTransition = errors.New("navigation: transition not allowed")
	// ErrNoPrevious indicates Back with no earlier mode to return to.
	ErrNoPrevious = errors.New("navigation: no previous mode")
)

// Mode is one screen of the application.
type Mode int

const (
	ModeTitle Mode = iota
	ModePlay
	ModeEdit
	ModeBrowse
	ModeOptions
)

var modeNames = [...]string{
	ModeTitle:   "title",
	ModePlay:    "play",
	ModeEdit:    "edit",
	ModeBrowse:  "browse",
	ModeOptions: "options",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Session is the state shared by screens. Hooks may modify it; everything
// else reads copies obtained from Controller.Session.
type Session struct {
	Mode     Mode
	LastMode Mode
	HasLast  bool
	Level    *level.Level
	Started  time.Time // start of the current play stopwatch; zero when stopped
}

// Elapsed returns the stopwatch reading at now, or 0 when it is stopped.
func (s Session) Elapsed(now time.Time) time.Duration {
	if s.Started.IsZero() || now.Before(s.Started) {
		return 0
	}
	return now.Sub(s.Started)
}

// FormatElapsed renders a stopwatch reading as "M:SS", or "H:MM:SS" from one
// hour on. Negative durations render as "0:00".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
