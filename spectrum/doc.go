// Package spectrum computes singular-value spectra and adjacency spectral
// embeddings of dense matrices via gonum's SVD.
//
// 🚀 What is a singular-value spectrum?
//
//	The descending sequence σ₁ ≥ σ₂ ≥ … ≥ σ_min(r,c) of a matrix, used as a
//	proxy for its effective rank. For adjacency matrices it feeds:
//	  • Scree plots & dimensionality selection (see package elbow)
//	  • Adjacency spectral embedding (ASE) of graphs
//	  • Low-rank structure diagnostics
//
// ✨ Key features:
//   - SingularValues: the full descending spectrum, values only
//   - Embed: ASE coordinates U·diag(√σ) truncated to d columns
//   - WithFullSVD: request complete U/V factors instead of thin ones
//
// ⚠️ A note on "full" SVD:
//
//	A full factorization widens the U and V factors to square matrices; it
//	does NOT produce more singular values. The spectrum always has exactly
//	min(rows, cols) entries, whichever mode computes it — a recurring source
//	of confusion when a "full" decomposition is expected to retain more of
//	the spectrum than a thin one.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectral/spectrum"
//
//	vals, err := spectrum.SingularValues(a)
//	coords, retained, err := spectrum.Embed(a, d)
//
// Performance:
//
//   - SingularValues: O(min(r,c)·r·c) time, O(r·c) memory
//   - Embed:          same factorization cost plus O(r·d) for scaling
//
// Errors:
//
//   - ErrNilMatrix: nil input matrix.
//   - ErrEmptyMatrix: a dimension is zero.
//   - ErrBadDims: requested embedding dimension outside [1, min(r,c)].
//   - ErrFactorization: the SVD failed to converge.
package spectrum
