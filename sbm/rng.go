// Package sbm - RNG utilities for deterministic graph sampling.
//
// This file centralizes random generation for the sampler.
//
// Goals:
//   - Determinism: same seed ⇒ identical adjacency across platforms.
//   - Stability: each block pair draws from its own derived substream, so
//     resizing one block never perturbs the draws of unrelated block pairs.
//   - Encapsulation: a single seed-mixing helper; no time-based sources.
//
// Concurrency:
//   - rand.Source is NOT goroutine-safe. Substreams are consumed strictly
//     sequentially inside Sample; do not share them across goroutines.
package sbm

import "golang.org/x/exp/rand"

// defaultSampleSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSampleSeed uint64 = 1

// normalizeSeed maps the public int64 seed onto the internal uint64 space.
// Policy: seed==0 ⇒ defaultSampleSeed; otherwise the seed bits verbatim.
//
// Complexity: O(1).
func normalizeSeed(seed int64) uint64 {
	if seed == 0 {
		return defaultSampleSeed
	}

	return uint64(seed)
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014). Small changes in
// either input produce large, well-distributed output changes, which keeps
// per-block-pair substreams uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent uint64, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// pairSource returns the dedicated source for the block pair (bi, bj) with
// bi <= bj, derived from the parent seed. The stream id enumerates the upper
// triangle row-major so every pair owns a distinct substream.
//
// Complexity: O(1).
func pairSource(parent uint64, bi, bj, k int) rand.Source {
	stream := uint64(bi)*uint64(k) + uint64(bj)

	return rand.NewSource(deriveSeed(parent, stream))
}
