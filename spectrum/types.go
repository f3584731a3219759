// Package spectrum defines options and sentinel errors for spectra and
// spectral embeddings.
package spectrum

import "errors"

// Sentinel errors for spectrum operations. All public entry points return
// these sentinels directly; tests match them via errors.Is.
var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("spectrum: matrix is nil")

	// ErrEmptyMatrix indicates a matrix with a zero dimension.
	ErrEmptyMatrix = errors.New("spectrum: matrix must have at least one row and one column")

	// ErrBadDims indicates a requested embedding dimension outside [1, min(r,c)].
	ErrBadDims = errors.New("spectrum: embedding dimension out of range")

	// ErrFactorization indicates the singular value decomposition failed to
	// converge on the input.
	ErrFactorization = errors.New("spectrum: SVD factorization failed")
)

// Option configures Embed. Options follow the functional pattern: the zero
// configuration (thin SVD) is the default, and each Option flips exactly one
// documented switch.
type Option func(*options)

// options carries the gathered Embed configuration. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	full bool
}

// WithFullSVD requests a complete factorization: square U and V factors in
// place of the thin ones. The singular values — and therefore the embedding
// coordinates — are identical either way; the mode only changes the internal
// factor shapes (see the package documentation note on "full" SVD).
func WithFullSVD() Option {
	return func(o *options) { o.full = true }
}

// gatherOptions folds a list of Options over the defaults.
func gatherOptions(opts []Option) options {
	var o options
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
