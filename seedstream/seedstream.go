// SPDX-License-Identifier: MIT
// Package seedstream - deterministic random streams for level generation.
//
// This file centralizes every random draw the generator makes.
//
// Goals:
//   - Determinism: the same (seed, series, attempt) triple yields the same
//     draws on every platform and Go release; no math/rand algorithm is involved.
//   - Encapsulation: one constructor, no package-level state, no time-based
//     sources hidden anywhere.
//   - Independence: streams for distinct triples start from well-separated
//     states, so neighboring attempts or series never alias.
//
// Concurrency:
//   - A *Stream is NOT goroutine-safe. Each generation call owns its stream;
//     independent calls may run concurrently without locking.
package seedstream

import "math/bits"

// SplitMix64 constants; see Vigna 2014. golden2 and golden3 are 2·golden
// and 3·golden modulo 2^64.
const (
	golden  uint64 = 0x9e3779b97f4a7c15
	golden2 uint64 = 0x3c6ef372fe94f82a
	golden3 uint64 = 0xdaa66d2c7ddf743f
	mixA    uint64 = 0xbf58476d1ce4e5b9
	mixB    uint64 = 0x94d049bb133111eb
)

// Stream is a SplitMix64 generator whose state is derived from a seed, a
// series and an attempt index.
type Stream struct {
	state uint64
}

// mix is the SplitMix64 finalizer: a bijective avalanche over 64 bits.
//
// Complexity: O(1).
func mix(x uint64) uint64 {
	x = (x ^ (x >> 30)) * mixA
	x = (x ^ (x >> 27)) * mixB
	return x ^ (x >> 31)
}

// deriveState folds (seed, series, attempt) into one state. Each component
// passes through the finalizer with a distinct offset before being combined,
// so changing any single input changes the state.
func deriveState(seed, series, attempt uint64) uint64 {
	x := mix(seed + golden)
	x = mix(x ^ (series + golden2))
	x = mix(x ^ (attempt + golden3))
	return x
}

// New returns the stream for one generation attempt.
func New(seed, series, attempt uint64) *Stream {
	return &Stream{state: deriveState(seed, series, attempt)}
}

// Uint64 returns the next 64 uniformly distributed bits.
func (s *Stream) Uint64() uint64 {
	s.state += golden
	return mix(s.state)
}

// Uniform returns a uniformly distributed integer in [0, bound). It returns 0
// when bound ≤ 1. Draws are unbiased (Lemire's multiply-and-reject).
func (s *Stream) Uniform(bound int) int {
	if bound <= 1 {
		return 0
	}
	n := uint64(bound)
	hi, lo := bits.Mul64(s.Uint64(), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul64(s.Uint64(), n)
		}
	}
	return int(hi)
}

// Float64 returns a uniformly distributed value in [0, 1).
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Bool reports true with probability p. p ≤ 0 never draws true and p ≥ 1
// always does; both still consume one draw so stream positions stay aligned.
func (s *Stream) Bool(p float64) bool {
	return s.Float64() < p
}

// Intn draws an integer in [lo, hi]. hi < lo returns lo.
func (s *Stream) Intn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Uniform(hi-lo+1)
}

// Shuffle performs an in-place Fisher–Yates shuffle over n elements.
//
// Complexity: O(n) time, O(1) extra space.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Uniform(i + 1)
		swap(i, j)
	}
}

// Perm returns a permutation of 0..n-1. n ≤ 0 yields an empty slice.
func (s *Stream) Perm(n int) []int {
	if n < 0 {
		n = 0
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	s.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// Sample returns k distinct indices drawn uniformly from 0..n-1, in draw
// order. k is clamped to [0, n].
func (s *Stream) Sample(n, k int) []int {
	k = max(0, min(k, n))
	p := s.Perm(n)
	return p[:k]
}
