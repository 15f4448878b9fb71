package hexgrid

import "errors"

var (
	// ErrNegativeRadius indicates a board radius below zero.
	ErrNegativeRadius = errors.New("hexgrid: radius must be non-negative")
	// ErrSymmetryInfeasible indicates the radius cannot realize the requested group exactly.
	ErrSymmetryInfeasible = errors.New("hexgrid: symmetry infeasible for radius")
	// ErrUnknownSymmetry indicates a symmetry name that does not parse.
	ErrUnknownSymmetry = errors.New("hexgrid: unknown symmetry")
	// ErrOutOfGrid indicates a coordinate that is not on the board.
	ErrOutOfGrid = errors.New("hexgrid: coordinate outside grid")
)
