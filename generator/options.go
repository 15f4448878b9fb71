package generator

import (
	"io"
	"log/slog"
)

// Purpose tells the generator what the level is for.
type Purpose int

const (
	// PurposePlay scrambles hidden tiles.
	PurposePlay Purpose = iota
	// PurposeEdit leaves hidden tiles in solved orientation so an editor
	// shows the solution.
	PurposeEdit
	// PurposeTitle is decorative background art; hidden tiles are scrambled.
	PurposeTitle
)

func (p Purpose) String() string {
	switch p {
	case PurposePlay:
		return "play"
	case PurposeEdit:
		return "edit"
	case PurposeTitle:
		return "title"
	}
	return "unknown"
}

// DefaultMaxAttempts bounds the retry loop.
const DefaultMaxAttempts = 64

// Option customizes a Supervisor.
type Option func(*config)

type config struct {
	logger       *slog.Logger
	maxAttempts  int
	onTransition func(attempt int, from, to State)
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes supervisor logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMaxAttempts overrides DefaultMaxAttempts. Panics when n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("generator: WithMaxAttempts(n < 1)")
	}
	return func(c *config) { c.maxAttempts = n }
}

// WithOnTransition registers a hook called on every state change. The hook
// runs synchronously on the generating goroutine. Panics on nil.
func WithOnTransition(fn func(attempt int, from, to State)) Option {
	if fn == nil {
		panic("generator: WithOnTransition(nil)")
	}
	return func(c *config) { c.onTransition = fn }
}
