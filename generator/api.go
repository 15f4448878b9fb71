package generator

import (
	"context"

	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/level"
	"github.com/katalvlaran/hexlace/params"
)

// GenerateRandomLevel is full-control generation: every failure is a
// *GenerationError and no partial level is ever returned.
func GenerateRandomLevel(ctx context.Context, p params.GenerationParameters, purpose Purpose, opts ...Option) (*level.Level, error) {
	return NewSupervisor(opts...).Generate(ctx, p, purpose)
}

// GenerateRandomLevelSimple generates with params.Defaults.
func GenerateRandomLevelSimple(ctx context.Context, purpose Purpose, opts ...Option) (*level.Level, error) {
	return GenerateRandomLevel(ctx, params.Defaults(), purpose, opts...)
}

// GenerateBlankLevel returns an all-blank board. It cannot fail; a negative
// radius is treated as 0.
func GenerateBlankLevel(radius int) *level.Level {
	p := params.Defaults()
	p.Mode = params.ModeBlank
	p.Radius = max(radius, 0)
	lv, err := GenerateRandomLevel(context.Background(), p, PurposeEdit)
	if err != nil {
		g, _ := hexgrid.New(p.Radius)
		return level.New(g)
	}
	return lv
}

// GenerateRandomTitleLevel builds the decorative title-screen level for seed.
// It never fails: on cancellation or exhaustion it returns a blank board of
// the same size.
func GenerateRandomTitleLevel(ctx context.Context, seed uint64, opts ...Option) *level.Level {
	p := params.Title(seed)
	lv, err := GenerateRandomLevel(ctx, p, PurposeTitle, opts...)
	if err != nil {
		return GenerateBlankLevel(p.Radius)
	}
	return lv
}
