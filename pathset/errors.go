// SPDX-License-Identifier: MIT
// Package: hexlace/pathset
//
// errors.go - sentinel errors for the pathset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (edge index, color) is attached with %w at the failure site.
//   • Mutators leave the PathSet untouched when they return an error.

package pathset

import "errors"

// ErrInvalidEdge indicates an edge index outside 0..5.
var ErrInvalidEdge = errors.New("pathset: invalid edge index")

// ErrSameEdge indicates a segment whose two ends are the same edge.
var ErrSameEdge = errors.New("pathset: segment ends must differ")

// ErrEdgeOccupied indicates an edge that already carries a path endpoint.
var ErrEdgeOccupied = errors.New("pathset: edge already occupied")

// ErrNotTerminal indicates an Extend on an edge that is not a dead end of the given color.
var ErrNotTerminal = errors.New("pathset: edge is not a terminal of that color")

// ErrUnknownColor indicates a color value or name outside the enumeration.
var ErrUnknownColor = errors.New("pathset: unknown color")
