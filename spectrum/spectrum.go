package spectrum

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SingularValues returns the full singular-value spectrum of a, sorted
// descending. The spectrum always holds exactly min(r, c) values.
//
// The factorization computes values only (no factors), which is the cheapest
// gonum SVD mode.
//
// Complexity: O(min(r,c)·r·c) time, O(r·c) memory.
func SingularValues(a mat.Matrix) ([]float64, error) {
	if err := validateMatrix(a); err != nil {
		return nil, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return nil, ErrFactorization
	}

	return svd.Values(nil), nil
}

// Embed computes the d-dimensional adjacency spectral embedding of a:
// the rows of U·diag(√σ) restricted to the d leading singular pairs.
// It returns the r×d coordinate matrix and the d retained singular values.
//
// Algorithm Outline:
//  1. Factorize a (thin SVD by default, full under WithFullSVD).
//  2. Keep the d leading left singular vectors U[:, :d].
//  3. Scale column j by √σ_j, so inner products of embedding rows
//     approximate the corresponding entries of a.
//
// d must lie in [1, min(r, c)]; ErrBadDims otherwise.
//
// Complexity: O(min(r,c)·r·c) time for the factorization, O(r·d) extra.
func Embed(a mat.Matrix, d int, opts ...Option) (*mat.Dense, []float64, error) {
	if err := validateMatrix(a); err != nil {
		return nil, nil, err
	}
	r, c := a.Dims()
	if d < 1 || d > min(r, c) {
		return nil, nil, ErrBadDims
	}

	kind := mat.SVDThin
	if gatherOptions(opts).full {
		kind = mat.SVDFull
	}
	var svd mat.SVD
	if ok := svd.Factorize(a, kind); !ok {
		return nil, nil, ErrFactorization
	}

	values := svd.Values(nil)
	var u mat.Dense
	svd.UTo(&u)

	coords := mat.NewDense(r, d, nil)
	for j := 0; j < d; j++ {
		scale := math.Sqrt(values[j])
		for i := 0; i < r; i++ {
			coords.Set(i, j, u.At(i, j)*scale)
		}
	}

	return coords, values[:d], nil
}

// validateMatrix rejects nil and zero-dimension inputs.
func validateMatrix(a mat.Matrix) error {
	if a == nil {
		return ErrNilMatrix
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyMatrix
	}

	return nil
}
