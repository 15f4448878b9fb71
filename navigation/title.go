package navigation

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/hexlace/generator"
	"github.com/katalvlaran/hexlace/level"
)

// TitleFunc produces a title-screen level for seed. It should return promptly
// once ctx is done.
type TitleFunc func(ctx context.Context, seed uint64) *level.Level

// TitleBackground generates the decorative title-screen level off the caller's
// goroutine. Each Refresh cancels the run before it; only a run that finished
// without being superseded or stopped publishes its level.
type TitleBackground struct {
	mu      sync.Mutex
	gen     TitleFunc
	logger  *slog.Logger
	current *level.Level
	seed    uint64
	cancel  context.CancelFunc
	done    chan struct{}
}

// TitleOption configures a TitleBackground.
type TitleOption func(*TitleBackground)

// WithTitleFunc replaces the generator (for testing).
func WithTitleFunc(fn TitleFunc) TitleOption {
	return func(b *TitleBackground) {
		if fn != nil {
			b.gen = fn
		}
	}
}

// WithTitleLogger sets the logger for run outcomes.
func WithTitleLogger(l *slog.Logger) TitleOption {
	return func(b *TitleBackground) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewTitleBackground returns an idle background generator backed by
// generator.GenerateRandomTitleLevel.
func NewTitleBackground(opts ...TitleOption) *TitleBackground {
	b := &TitleBackground{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	b.gen = func(ctx context.Context, seed uint64) *level.Level {
		return generator.GenerateRandomTitleLevel(ctx, seed, generator.WithLogger(b.logger))
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Refresh starts generating a level for seed under ctx, cancelling any run
// still in flight. It does not wait for the new run.
func (b *TitleBackground) Refresh(ctx context.Context, seed uint64) {
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
	}
	b.cancel, b.done = cancel, done
	b.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()
		lv := b.gen(runCtx, seed)

		b.mu.Lock()
		defer b.mu.Unlock()
		if runCtx.Err() != nil || b.done != done {
			b.logger.Debug("title level discarded", slog.Uint64("seed", seed))
			return
		}
		b.current, b.seed = lv, seed
		b.logger.Debug("title level ready", slog.Uint64("seed", seed))
	}()
}

// Level returns the last published level and its seed; nil before the first
// run completes.
func (b *TitleBackground) Level() (*level.Level, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current, b.seed
}

// Wait blocks until the latest run finishes or ctx is done.
func (b *TitleBackground) Wait(ctx context.Context) error {
	b.mu.Lock()
	done := b.done
	b.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop cancels the run in flight, if any. The published level is kept.
func (b *TitleBackground) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}
