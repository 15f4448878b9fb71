package generator_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/hexlace/generator"
	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/params"
	"github.com/katalvlaran/hexlace/pathset"
)

func benchmarkGenerate(b *testing.B, p params.GenerationParameters) {
	ctx := context.Background()
	s := generator.NewSupervisor()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Seed = uint64(i)
		if _, err := s.Generate(ctx, p, generator.PurposePlay); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate_Defaults measures the simple entry point's parameter set.
func BenchmarkGenerate_Defaults(b *testing.B) {
	benchmarkGenerate(b, params.Defaults())
}

// BenchmarkGenerate_Rotate6 grows on a sixth of a radius-5 board.
func BenchmarkGenerate_Rotate6(b *testing.B) {
	p := params.Defaults()
	p.Radius = 5
	p.Symmetry = hexgrid.SymmetryRotate6
	p.Colors = pathset.NewColorSet(pathset.Red)
	p.FixedRange = params.IntRange{Min: 0, Max: hexgrid.TileCount(5)}
	p.HiddenRange = params.IntRange{Min: 0, Max: hexgrid.TileCount(5)}
	benchmarkGenerate(b, p)
}
