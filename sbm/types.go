// Package sbm defines the block model type, sampling options, and sentinel
// errors for SBM adjacency sampling.
package sbm

import "errors"

// Sentinel errors for model validation. All public entry points return these
// sentinels directly; tests match them via errors.Is.
//
// Validation priority (enforced in tests):
// blocks -> block sizes -> probability shape -> range -> symmetry.
var (
	// ErrNoBlocks indicates a model with zero blocks.
	ErrNoBlocks = errors.New("sbm: model must have at least one block")

	// ErrBlockSize indicates a block with fewer than one vertex.
	ErrBlockSize = errors.New("sbm: every block size must be >= 1")

	// ErrProbShape indicates Probs is not a square matrix matching len(Sizes).
	ErrProbShape = errors.New("sbm: probability matrix shape must be k x k for k blocks")

	// ErrProbRange indicates a probability outside [0,1] or a NaN/Inf entry.
	ErrProbRange = errors.New("sbm: probabilities must be finite and within [0,1]")

	// ErrProbAsymmetry indicates Probs[i][j] != Probs[j][i] for some pair.
	// Undirected sampling requires a symmetric block probability matrix.
	ErrProbAsymmetry = errors.New("sbm: probability matrix must be symmetric")
)

// Model describes an undirected stochastic block model: Probs[i][j] is the
// probability of an edge between a vertex of block i and a vertex of block j,
// and Sizes[i] is the number of vertices in block i.
//
// Model is plain data; Validate is invoked by Sample and ExpectedMatrix, so
// hand-built models surface errors at use, not construction.
type Model struct {
	Probs [][]float64
	Sizes []int
}

// NumBlocks returns the number of blocks k.
func (m Model) NumBlocks() int { return len(m.Sizes) }

// NumVertices returns the total vertex count across all blocks.
func (m Model) NumVertices() int {
	var n int
	for _, s := range m.Sizes {
		n += s
	}

	return n
}

// Validate checks the model against the documented contract. It returns the
// first violated sentinel in priority order, or nil.
func (m Model) Validate() error {
	k := len(m.Sizes)
	if k == 0 {
		return ErrNoBlocks
	}
	for _, s := range m.Sizes {
		if s < 1 {
			return ErrBlockSize
		}
	}
	if len(m.Probs) != k {
		return ErrProbShape
	}
	for _, row := range m.Probs {
		if len(row) != k {
			return ErrProbShape
		}
	}
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			p := m.Probs[i][j]
			if p != p || p < 0 || p > 1 { // p != p catches NaN; [0,1] excludes ±Inf
				return ErrProbRange
			}
		}
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if m.Probs[i][j] != m.Probs[j][i] {
				return ErrProbAsymmetry
			}
		}
	}

	return nil
}

// SampleOptions configures adjacency sampling.
//
// Fields:
//   - Seed — RNG seed; 0 selects the fixed default seed, so the zero value
//     is still fully deterministic.
type SampleOptions struct {
	Seed int64
}

// DefaultSampleOptions returns the default sampling configuration (Seed=0,
// i.e. the fixed default stream).
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{Seed: 0}
}
