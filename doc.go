// Package hexlace generates hex-tile path puzzles: a radius-r hexagonal board
// whose tiles carry colored path segments that must connect edge to edge.
// Some tiles are revealed in their solved orientation, some are hidden and
// turned, and the player rotates the hidden ones until every path closes.
//
// 🚀 What is in the box?
//
//   - Deterministic generation: the same seed, series and parameters always
//     give the same level, on every machine
//   - Symmetric boards: mirror, 2-, 3- and 6-fold rotation, full dihedral
//   - Density control, fill-every-tile mode, fixed/hidden reveal ranges
//   - Typed failures: every error is a *generator.GenerationError
//
// Packages:
//
//	hexgrid/    - axial coordinates, board enumeration, symmetry groups, fundamental domains
//	pathset/    - per-tile colored segments on the six edges; rotation and reflection
//	seedstream/ - SplitMix64-derived random streams; seed parsing
//	params/     - GenerationParameters, ranges, YAML/JSON codecs, defaults
//	level/      - the generated board, reveal states, solution checks, stable IDs
//	generator/  - connectivity growth, symmetry mirroring, reveal, retry supervisor
//	navigation/ - screen modes, transition table, title-screen background generation
//	cmd/hexlace - command line front end
//
// Quick example:
//
//	p := params.Defaults()
//	p.Seed = 42
//	p.Symmetry = hexgrid.SymmetryRotate3
//	lv, err := generator.GenerateRandomLevel(ctx, p, generator.PurposePlay)
//	if err != nil {
//		// errors.Is(err, generator.ErrParameterRange) etc.
//	}
//	fmt.Println(lv.ID, lv.IsSolved())
package hexlace
