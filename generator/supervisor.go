// SPDX-License-Identifier: MIT

package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/level"
	"github.com/katalvlaran/hexlace/params"
	"github.com/katalvlaran/hexlace/seedstream"
)

// State is a phase of one generation call.
type State int

const (
	StateBuilding State = iota
	StateValidating
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "BUILDING"
	case StateValidating:
		return "VALIDATING"
	case StateDone:
		return "DONE"
	case StateFailed:
		return "FAILED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Supervisor drives attempt, validate and retry. It holds only immutable
// configuration, so one Supervisor may serve concurrent calls.
type Supervisor struct {
	cfg config
}

// NewSupervisor returns a supervisor configured by opts.
func NewSupervisor(opts ...Option) *Supervisor {
	return &Supervisor{cfg: newConfig(opts...)}
}

// run is the mutable state of one Generate call.
type run struct {
	cfg     config
	p       params.GenerationParameters
	purpose Purpose
	state   State
	attempt int
	log     *slog.Logger
}

func (r *run) transition(to State) {
	from := r.state
	r.state = to
	if r.cfg.onTransition != nil {
		r.cfg.onTransition(r.attempt, from, to)
	}
}

func (r *run) fail(kind error, attempts int, cause error) error {
	r.transition(StateFailed)
	return &GenerationError{Kind: kind, Attempts: attempts, Cause: cause}
}

// Generate builds a level from p. Parameters are normalized first. Capacity
// and symmetry problems fail before any growth; candidate failures are
// retried with the next attempt index until the attempt bound. The context
// is checked between attempts only.
func (s *Supervisor) Generate(ctx context.Context, p params.GenerationParameters, purpose Purpose) (*level.Level, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	p.Normalize()
	r := &run{
		cfg:     s.cfg,
		p:       p,
		purpose: purpose,
		state:   StateBuilding,
		log: s.cfg.logger.With(
			slog.Uint64("seed", p.Seed),
			slog.Uint64("series", p.Series),
			slog.Int("radius", p.Radius),
			slog.String("symmetry", p.Symmetry.String()),
		),
	}

	if err := p.Validate(); err != nil {
		return nil, r.fail(ErrParameterRange, 0, err)
	}
	g, err := hexgrid.New(p.Radius)
	if err != nil {
		return nil, r.fail(ErrParameterRange, 0, err)
	}
	if p.Mode == params.ModeBlank {
		return r.blank(g)
	}
	if p.FixedCount+p.HiddenCount > g.Len() {
		return nil, r.fail(ErrParameterRange, 0,
			fmt.Errorf("fixed %d + hidden %d exceeds %d tiles", p.FixedCount, p.HiddenCount, g.Len()))
	}
	dom, err := hexgrid.NewDomain(g, p.Symmetry)
	if err != nil {
		return nil, r.fail(ErrSymmetryInfeasible, 0, err)
	}

	var last error
	for attempt := 0; attempt < s.cfg.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			r.log.Debug("generation cancelled", slog.Int("attempt", attempt))
			return nil, r.fail(ErrCancelled, attempt, ctx.Err())
		default:
		}
		r.attempt = attempt
		if r.state != StateBuilding {
			r.transition(StateBuilding)
		}
		r.log.Debug("attempt started", slog.Int("attempt", attempt))

		lv, err := r.candidate(g, dom)
		if err == nil {
			r.transition(StateValidating)
			err = validate(lv, dom, p, purpose)
		}
		if err == nil {
			r.transition(StateDone)
			r.log.Info("level generated", slog.Int("attempt", attempt),
				slog.Int("fixed", lv.FixedCount), slog.Int("hidden", lv.HiddenCount))
			return lv, nil
		}
		last = err
		r.log.Debug("candidate rejected", slog.Int("attempt", attempt),
			slog.Any("constraint", constraintOf(err)), slog.String("cause", err.Error()))
	}

	r.log.Warn("generation exhausted", slog.Int("attempts", s.cfg.maxAttempts), slog.String("cause", last.Error()))
	return nil, r.fail(ErrGenerationExhausted, s.cfg.maxAttempts, last)
}

// candidate runs connect, mirror and reveal for the current attempt.
func (r *run) candidate(g *hexgrid.Grid, dom *hexgrid.Domain) (*level.Level, error) {
	rng := seedstream.New(r.p.Seed, r.p.Series, uint64(r.attempt))

	cv := newCanvas(dom)
	if err := newConnector(cv, rng, r.p.PathDensity).connect(r.p.Colors.Colors(), r.p.FillAllTiles); err != nil {
		return nil, err
	}
	lv := level.New(g)
	mirror(cv, lv)
	if err := reveal(lv, r.p, rng, r.purpose); err != nil {
		return nil, err
	}
	r.stamp(lv)
	return lv, nil
}

// blank returns the all-blank board straight from VALIDATING.
func (r *run) blank(g *hexgrid.Grid) (*level.Level, error) {
	r.transition(StateValidating)
	lv := level.New(g)
	r.stamp(lv)
	for _, t := range lv.Tiles {
		if t.State != level.Blank || t.Occupied() {
			return nil, r.fail(ErrInvalidCandidate, 0, fmt.Errorf("blank board has content at %s", t.Coord))
		}
	}
	r.transition(StateDone)
	r.log.Info("blank level generated", slog.Int("tiles", len(lv.Tiles)))
	return lv, nil
}

// stamp copies the generation metadata onto a level and derives its ID.
func (r *run) stamp(lv *level.Level) {
	lv.Symmetry = r.p.Symmetry
	lv.Colors = r.p.Colors
	lv.Seed = r.p.Seed
	lv.Series = r.p.Series
	lv.Attempt = r.attempt
	lv.ID = level.NewID(generationKey(r.p, r.purpose, r.attempt))
}

// generationKey is the canonical text of everything that determines a level.
func generationKey(p params.GenerationParameters, purpose Purpose, attempt int) []byte {
	return fmt.Appendf(nil, "hexlace/v1|%s|%d|%d|%d|%s|%s|%d|%d|%g|%s|%s|%t|%s|%d",
		p.Mode, p.Seed, p.Series, p.Radius, p.FixedRange, p.HiddenRange,
		p.FixedCount, p.HiddenCount, p.PathDensity, p.Colors, p.Symmetry,
		p.FillAllTiles, purpose, attempt)
}
