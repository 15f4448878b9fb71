package navigation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/hexlace/generator"
	"github.com/katalvlaran/hexlace/params"
)

// Params configures the levels a game controller generates.
type Params struct {
	Level     params.GenerationParameters
	Generator []generator.Option
}

// Hook runs while a transition is in progress.
type Hook func(s *Session) error

// Hooks are the side effects of one (from, to) transition. Exit runs while
// the session still shows from; Enter runs after the mode switched to to.
// Either may be nil.
type Hooks struct {
	Exit  Hook
	Enter Hook
}

type edge struct{ from, to Mode }

// Controller owns the Session and applies transitions from its table.
// It is safe for concurrent use; hooks run with the controller locked and
// must not call back into it.
type Controller struct {
	mu    sync.Mutex
	sess  Session
	table map[edge]Hooks
	now   func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for the play stopwatch (for testing).
func WithClock(fn func() time.Time) Option {
	return func(c *Controller) { c.now = fn }
}

// NewController starts in mode start with an empty table.
func NewController(start Mode, opts ...Option) *Controller {
	c := &Controller{
		sess:  Session{Mode: start},
		table: make(map[edge]Hooks),
		now:   time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Allow declares the transition from → to with its hooks, replacing any
// earlier declaration of the same pair.
func (c *Controller) Allow(from, to Mode, h Hooks) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table[edge{from, to}] = h
}

// Allowed reports whether from → to is declared.
func (c *Controller) Allowed(from, to Mode) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.table[edge{from, to}]
	return ok
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

// Go moves to mode to. An Exit error aborts with the session untouched; an
// Enter error restores the session as it was after Exit.
func (c *Controller) Go(to Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.goLocked(to)
}

// Back returns to the previous mode through the table.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.sess.HasLast {
		return fmt.Errorf("Back from %s: %w", c.sess.Mode, ErrNoPrevious)
	}
	return c.goLocked(c.sess.LastMode)
}

func (c *Controller) goLocked(to Mode) error {
	from := c.sess.Mode
	h, ok := c.table[edge{from, to}]
	if !ok {
		return fmt.Errorf("Go(%s -> %s): %w", from, to, ErrInvalidTransition)
	}
	work := c.sess
	if h.Exit != nil {
		if err := h.Exit(&work); err != nil {
			return fmt.Errorf("exit %s: %w", from, err)
		}
	}
	exited := work
	work.LastMode, work.HasLast, work.Mode = from, true, to
	if h.Enter != nil {
		if err := h.Enter(&work); err != nil {
			c.sess = exited
			return fmt.Errorf("enter %s: %w", to, err)
		}
	}
	c.sess = work
	return nil
}

// NewGameController returns a controller at the title screen with the
// standard screen graph:
//
//	title   -> play, edit, browse, options
//	play    -> title
//	edit    -> play, title
//	browse  -> play, title
//	options -> title
//
// Entering play from the title generates a level with params; entering edit
// from the title starts from a blank board. Entering play starts the
// stopwatch and leaving it stops the stopwatch.
func NewGameController(ctx context.Context, p Params, opts ...Option) *Controller {
	c := NewController(ModeTitle, opts...)

	startClock := func(s *Session) error {
		s.Started = c.now()
		return nil
	}
	stopClock := func(s *Session) error {
		s.Started = time.Time{}
		return nil
	}
	newGame := func(s *Session) error {
		lv, err := generator.GenerateRandomLevel(ctx, p.Level, generator.PurposePlay, p.Generator...)
		if err != nil {
			return err
		}
		s.Level = lv
		return startClock(s)
	}
	playLoaded := func(s *Session) error {
		if s.Level == nil {
			return newGame(s)
		}
		return startClock(s)
	}
	blankBoard := func(s *Session) error {
		s.Level = generator.GenerateBlankLevel(p.Level.Radius)
		return nil
	}

	c.Allow(ModeTitle, ModePlay, Hooks{Enter: newGame})
	c.Allow(ModeTitle, ModeEdit, Hooks{Enter: blankBoard})
	c.Allow(ModeTitle, ModeBrowse, Hooks{})
	c.Allow(ModeTitle, ModeOptions, Hooks{})
	c.Allow(ModePlay, ModeTitle, Hooks{Exit: stopClock})
	c.Allow(ModeEdit, ModePlay, Hooks{Enter: playLoaded})
	c.Allow(ModeEdit, ModeTitle, Hooks{})
	c.Allow(ModeBrowse, ModePlay, Hooks{Enter: playLoaded})
	c.Allow(ModeBrowse, ModeTitle, Hooks{})
	c.Allow(ModeOptions, ModeTitle, Hooks{})
	return c
}
