// File: hexgrid/example_test.go
package hexgrid_test

import (
	"fmt"

	"github.com/katalvlaran/hexlace/hexgrid"
)

// ExampleFundamentalDomain shows the wedge a 6-fold symmetric level of
// radius 1 is grown on: the center plus one tile of the first ring.
func ExampleFundamentalDomain() {
	reps, err := hexgrid.FundamentalDomain(1, hexgrid.SymmetryRotate6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tiles:", hexgrid.TileCount(1))
	fmt.Println("domain:", reps)

	// Output:
	// tiles: 7
	// domain: [(-1,0) (0,0)]
}

// ExampleOp_ApplyEdge rotates a tile by 120° and shows where its east edge lands.
func ExampleOp_ApplyEdge() {
	op := hexgrid.Op{Rot: 2}
	fmt.Println(op.Apply(hexgrid.Coord{Q: 2, R: 0}), op.ApplyEdge(0))

	// Output:
	// (0,-2) 2
}
