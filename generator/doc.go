// Package generator builds hexagonal path-puzzle levels deterministically
// from a parameter set and a seed.
//
// Pipeline (one attempt):
//
//  1. ConnectivityBuilder grows colored paths over the fundamental domain of
//     the board. Content is stored for domain representatives only and every
//     change is applied together with its images under the representative's
//     stabilizer, so the board is symmetric and edge-consistent by
//     construction.
//  2. SymmetryMapper materializes the full solved board from the domain.
//  3. RevealPlanner marks tiles fixed, hidden or blank and scrambles hidden
//     tiles.
//  4. The candidate is validated against edge matching, symmetry equality,
//     density and count bounds.
//
// The Supervisor runs attempts 0..MaxAttempts-1, each with its own
// seedstream derived from (seed, series, attempt), and moves through the
// states BUILDING, VALIDATING, DONE and FAILED. Rejected candidates are
// discarded; the next attempt index is deterministic, so identical inputs
// always yield identical levels.
//
// Density mapping:
//
//	occupied target per color = max(2, ceil(density·|domain|)), at most |domain|
//	                            (0 when density is 0)
//	dead-end probability      = 0.5·(1 − density)
//
// Errors:
//
// Every failure is a *GenerationError whose Kind is one of
// ErrParameterRange, ErrSymmetryInfeasible, ErrGenerationExhausted or
// ErrCancelled; errors.Is also matches the last concrete cause, e.g.
// ErrDensityUnsatisfiable inside an exhausted run.
//
// Concurrency:
//
// Generation is synchronous and keeps all state local to the call; distinct
// calls may run concurrently. Cancellation is observed between attempts.
package generator
