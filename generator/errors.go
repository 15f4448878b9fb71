// SPDX-License-Identifier: MIT
// Package: hexlace/generator
//
// errors.go - sentinel errors and the structured generation failure.
//
// Error policy:
//   • Sentinels name the constraint that failed; callers branch with errors.Is.
//   • Every failure returned by the entry points is a *GenerationError, so
//     errors.As gives access to the attempt count and the concrete cause.
//   • Candidate-level failures (density, invalid candidate, reveal counts) are
//     retried; parameter and symmetry failures are reported before any growth.

package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrParameterRange indicates counts exceeding tile capacity, ranges that
	// cannot be met after clamping, or parameters that fail validation.
	ErrParameterRange = errors.New("generator: parameter out of range")

	// ErrSymmetryInfeasible indicates a radius that cannot realize the
	// requested symmetry group.
	ErrSymmetryInfeasible = errors.New("generator: symmetry infeasible")

	// ErrDensityUnsatisfiable indicates path growth that could not reach the
	// density target, or too few occupied tiles to place the reveal counts.
	ErrDensityUnsatisfiable = errors.New("generator: density unsatisfiable")

	// ErrInvalidCandidate indicates a candidate level violating edge matching
	// or symmetry equality.
	ErrInvalidCandidate = errors.New("generator: invalid candidate")

	// ErrGenerationExhausted indicates that every attempt was rejected.
	ErrGenerationExhausted = errors.New("generator: attempts exhausted")

	// ErrCancelled indicates the caller's context ended between attempts.
	ErrCancelled = errors.New("generator: cancelled")
)

// GenerationError is the failure returned by generation. Kind is one of the
// package sentinels; Cause is the last concrete error observed.
type GenerationError struct {
	Kind     error
	Attempts int
	Cause    error
}

func (e *GenerationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%v (attempts=%d)", e.Kind, e.Attempts)
	}
	return fmt.Sprintf("%v (attempts=%d): %v", e.Kind, e.Attempts, e.Cause)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *GenerationError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}

// constraintOf names the sentinel a candidate failure belongs to.
func constraintOf(err error) error {
	for _, k := range []error{ErrDensityUnsatisfiable, ErrParameterRange, ErrInvalidCandidate} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
