package generator_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hexlace/generator"
	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/level"
	"github.com/katalvlaran/hexlace/params"
	"github.com/katalvlaran/hexlace/pathset"
)

// ExampleGenerateRandomLevel generates a 3-fold symmetric level and checks
// that its stored solution connects.
func ExampleGenerateRandomLevel() {
	p := params.Defaults()
	p.Seed = 42
	p.Colors = pathset.NewColorSet(pathset.Green)
	p.Symmetry = hexgrid.SymmetryRotate3

	lv, err := generator.GenerateRandomLevel(context.Background(), p, generator.PurposePlay)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tiles:", len(lv.Tiles))
	fmt.Println("solution connects:", lv.Solved().IsSolved())
	fmt.Println("dangling ends:", len(lv.Mismatches(level.OrientSolved)))

	// Output:
	// tiles: 37
	// solution connects: true
	// dangling ends: 0
}

// ExampleGenerateRandomLevel_capacity shows a parameter set that asks for
// more revealed tiles than the board has.
func ExampleGenerateRandomLevel_capacity() {
	p := params.Defaults()
	p.Radius = 1
	p.FixedRange = params.IntRange{Min: 0, Max: 7}
	p.HiddenRange = params.IntRange{Min: 0, Max: 7}
	p.FixedCount, p.HiddenCount = 2, 10

	_, err := generator.GenerateRandomLevel(context.Background(), p, generator.PurposePlay)
	var ge *generator.GenerationError
	fmt.Println(errors.Is(err, generator.ErrParameterRange), errors.As(err, &ge) && ge.Attempts == 0)

	// Output:
	// true true
}

func ExampleGenerateBlankLevel() {
	lv := generator.GenerateBlankLevel(2)
	fixed, hidden, blank := lv.Counts()
	fmt.Println(len(lv.Tiles), fixed, hidden, blank)

	// Output:
	// 19 0 0 19
}
