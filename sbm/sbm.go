package sbm

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PlantedPartition builds the classic k-block planted-partition model:
// every block holds blockSize vertices, edges inside a block appear with
// probability within, edges across blocks with probability between.
//
// The returned Model is plain data; invalid arguments (k < 1, blockSize < 1,
// probabilities outside [0,1]) surface through Validate at sampling time.
//
// Complexity: O(k²) time, O(k²) memory.
func PlantedPartition(k, blockSize int, within, between float64) Model {
	probs := make([][]float64, k)
	sizes := make([]int, k)
	for i := 0; i < k; i++ {
		probs[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			if i == j {
				probs[i][j] = within
			} else {
				probs[i][j] = between
			}
		}
		sizes[i] = blockSize
	}

	return Model{Probs: probs, Sizes: sizes}
}

// Sample draws a simple undirected graph from the model and returns its
// dense 0/1 adjacency matrix together with the per-vertex block labels.
//
// Algorithm Outline:
//  1. Validate the model; lay vertices out block by block (labels).
//  2. For each block pair (bi, bj), bi ≤ bj, open a dedicated RNG substream
//     (see rng.go) and a Bernoulli(p) draw over it.
//  3. Fill the strictly-upper-triangle entries between the two index ranges;
//     SetSym mirrors them. The diagonal stays zero (no self-loops).
//
// The per-pair substreams make the sample a pure function of (model, seed):
// changing one probability entry re-rolls only the edges it governs.
//
// Complexity: O(V²) time, O(V²) memory.
func Sample(m Model, opts SampleOptions) (*mat.SymDense, []int, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}

	n := m.NumVertices()
	k := m.NumBlocks()
	labels := blockLabels(m.Sizes)
	offsets := blockOffsets(m.Sizes)
	parent := normalizeSeed(opts.Seed)

	a := mat.NewSymDense(n, nil)
	for bi := 0; bi < k; bi++ {
		for bj := bi; bj < k; bj++ {
			p := m.Probs[bi][bj]
			if p == 0 {
				continue // substream untouched; skipping draws nothing
			}
			bern := distuv.Bernoulli{P: p, Src: pairSource(parent, bi, bj, k)}
			loI, hiI := offsets[bi], offsets[bi]+m.Sizes[bi]
			loJ, hiJ := offsets[bj], offsets[bj]+m.Sizes[bj]
			for i := loI; i < hiI; i++ {
				// Same block: only pairs above the diagonal. Cross block:
				// every (i, j) pair; loJ > i holds because bj > bi.
				jStart := loJ
				if bi == bj {
					jStart = i + 1
				}
				for j := jStart; j < hiJ; j++ {
					if bern.Rand() == 1 {
						a.SetSym(i, j, 1)
					}
				}
			}
		}
	}

	return a, labels, nil
}

// ExpectedMatrix returns the expectation P of the sampled adjacency:
// P[i][j] = Probs[block(i)][block(j)] off the diagonal, 0 on it (the sampler
// never draws self-loops). Useful for analytic spectrum comparisons.
//
// Complexity: O(V²) time, O(V²) memory.
func ExpectedMatrix(m Model) (*mat.SymDense, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	n := m.NumVertices()
	labels := blockLabels(m.Sizes)
	p := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p.SetSym(i, j, m.Probs[labels[i]][labels[j]])
		}
	}

	return p, nil
}

// blockLabels expands block sizes into a per-vertex label slice:
// the first Sizes[0] vertices belong to block 0, and so on.
func blockLabels(sizes []int) []int {
	labels := make([]int, 0)
	for b, s := range sizes {
		for v := 0; v < s; v++ {
			labels = append(labels, b)
		}
	}

	return labels
}

// blockOffsets returns the index of the first vertex of each block.
func blockOffsets(sizes []int) []int {
	offsets := make([]int, len(sizes))
	var acc int
	for b, s := range sizes {
		offsets[b] = acc
		acc += s
	}

	return offsets
}
