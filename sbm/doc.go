// Package sbm samples undirected stochastic block model (SBM) graphs as
// dense adjacency matrices, ready for spectral analysis.
//
// 🚀 What is an SBM?
//
//	A random graph model where vertices are partitioned into blocks and the
//	probability of an edge depends only on the blocks of its two endpoints.
//	SBMs are the standard testbed for:
//	  • Community detection & graph clustering benchmarks
//	  • Spectral embedding dimensionality studies
//	  • Planted-partition recovery experiments
//
// ✨ Key features:
//   - Model as plain data: block probability matrix + block sizes
//   - PlantedPartition constructor for the classic within/between regime
//   - deterministic sampling: SplitMix64-derived substream per block pair,
//     so the same seed reproduces the same graph bit-for-bit
//   - ExpectedMatrix for analytic spectrum comparisons
//   - gonum types throughout (*mat.SymDense), Bernoulli draws via
//     gonum/stat/distuv
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectral/sbm"
//
//	m := sbm.PlantedPartition(100, 10, 0.7, 0.01)
//	a, labels, err := sbm.Sample(m, sbm.SampleOptions{Seed: 42})
//	if err != nil {
//	  // handle ErrProbRange, ErrBlockSize, ... via errors.Is
//	}
//
// Sampled graphs are simple: symmetric 0/1 adjacency, no self-loops, no
// parallel edges.
//
// Performance:
//
//   - Sample:         O(V²) time, O(V²) memory (dense output)
//   - ExpectedMatrix: O(V²) time, O(V²) memory
//
// Errors:
//
//   - ErrNoBlocks: the model has no blocks.
//   - ErrBlockSize: a block size is < 1.
//   - ErrProbShape: Probs is not square or does not match Sizes.
//   - ErrProbRange: a probability is outside [0,1] or not finite.
//   - ErrProbAsymmetry: Probs is not symmetric.
package sbm
