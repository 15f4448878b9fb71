package generator

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/level"
	"github.com/katalvlaran/hexlace/params"
)

// validate checks a candidate against every invariant of a returned level.
// Checks run cheapest first and stop at the first violation.
func validate(lv *level.Level, dom *hexgrid.Domain, p params.GenerationParameters, purpose Purpose) error {
	if err := validateEdges(lv); err != nil {
		return err
	}
	if err := validateSymmetry(lv, dom); err != nil {
		return err
	}
	if err := validateDensity(lv, dom, p); err != nil {
		return err
	}
	return validateCounts(lv, p, purpose)
}

// validateEdges requires every solved endpoint to meet a same-colored
// endpoint across its edge.
func validateEdges(lv *level.Level) error {
	if bad := lv.Mismatches(level.OrientSolved); len(bad) > 0 {
		return fmt.Errorf("validate: %d unmatched endpoints, first at %s: %w", len(bad), bad[0], ErrInvalidCandidate)
	}
	return nil
}

// validateSymmetry requires the content at g(t) to equal g applied to the
// content at t. Checking one member per orbit against every operation covers
// all pairs because the operations form a group.
func validateSymmetry(lv *level.Level, dom *hexgrid.Domain) error {
	ops := dom.Symmetry().Group()
	done := mapset.New[hexgrid.Coord]()
	for i := range lv.Tiles {
		t := &lv.Tiles[i]
		if done.Has(t.Coord) {
			continue
		}
		for _, op := range ops {
			at := op.Apply(t.Coord)
			img := lv.Tile(at)
			if img == nil {
				return fmt.Errorf("validate: %s maps %s off the board: %w", op, t.Coord, ErrInvalidCandidate)
			}
			if img.Solved != t.Solved.Transform(op) {
				return fmt.Errorf("validate: %s of %s differs at %s: %w", op, t.Coord, at, ErrInvalidCandidate)
			}
			done.Put(at)
		}
	}
	return nil
}

// validateDensity recounts, per color, the domain tiles carrying it.
func validateDensity(lv *level.Level, dom *hexgrid.Domain, p params.GenerationParameters) error {
	target := occupiedTarget(p.PathDensity, dom.Len())
	for _, c := range p.Colors.Colors() {
		n := 0
		for _, rc := range dom.Representatives() {
			if lv.Tile(rc).Solved.HasColor(c) {
				n++
			}
		}
		if n < target {
			return fmt.Errorf("validate: %s covers %d of %d domain tiles: %w", c, n, target, ErrDensityUnsatisfiable)
		}
	}
	if p.FillAllTiles {
		for _, t := range lv.Tiles {
			if !t.Occupied() {
				return fmt.Errorf("validate: %s empty under fill-all: %w", t.Coord, ErrDensityUnsatisfiable)
			}
		}
	}
	return nil
}

// validateCounts checks reveal states against the ranges and the recorded
// counts, and that hidden tiles show their solution turned by Rotation.
func validateCounts(lv *level.Level, p params.GenerationParameters, purpose Purpose) error {
	fixed, hidden, _ := lv.Counts()
	switch {
	case fixed != lv.FixedCount || hidden != lv.HiddenCount:
		return fmt.Errorf("validate: recorded %d/%d, counted %d/%d: %w",
			lv.FixedCount, lv.HiddenCount, fixed, hidden, ErrInvalidCandidate)
	case fixed+hidden > len(lv.Tiles):
		return fmt.Errorf("validate: %d reveal tiles on %d: %w", fixed+hidden, len(lv.Tiles), ErrParameterRange)
	case !p.FixedRange.Contains(fixed):
		return fmt.Errorf("validate: fixed %d outside %s: %w", fixed, p.FixedRange, ErrParameterRange)
	case !p.HiddenRange.Contains(hidden):
		return fmt.Errorf("validate: hidden %d outside %s: %w", hidden, p.HiddenRange, ErrParameterRange)
	}
	for _, t := range lv.Tiles {
		switch t.State {
		case level.Hidden:
			if purpose != PurposeEdit && (t.Rotation < 1 || t.Rotation > 5) {
				return fmt.Errorf("validate: hidden %s has rotation %d: %w", t.Coord, t.Rotation, ErrInvalidCandidate)
			}
			if t.Current != t.Solved.Rotate(t.Rotation) {
				return fmt.Errorf("validate: hidden %s current does not match rotation: %w", t.Coord, ErrInvalidCandidate)
			}
		case level.Fixed:
			if t.Rotation != 0 || t.Current != t.Solved || !t.Occupied() {
				return fmt.Errorf("validate: fixed %s is not in solved orientation: %w", t.Coord, ErrInvalidCandidate)
			}
		default:
			if t.Occupied() {
				return fmt.Errorf("validate: blank %s carries paths: %w", t.Coord, ErrInvalidCandidate)
			}
		}
	}
	return nil
}
