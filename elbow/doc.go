// Package elbow selects the effective dimensionality of a descending
// singular-value sequence via profile-likelihood elbow detection
// (Zhu & Ghodsi, 2006).
//
// 🚀 What is an elbow?
//
//	A point in a sorted magnitude sequence where values drop sharply,
//	separating "signal" dimensions from the noise floor.  Elbow detection
//	is the standard dimensionality heuristic for:
//	  • Spectral embeddings of graphs (pick d for ASE/LSE)
//	  • PCA / factor-count selection
//	  • Scree-plot automation in general
//
// ✨ Key features:
//   - profile likelihood: two Gaussians with a shared ML variance, split
//     point chosen to maximize the joint likelihood
//   - multi-elbow recursion: subsequent elbows searched strictly after the
//     previous one
//   - deterministic ties: equal likelihoods resolve to the smallest index
//   - pure & idempotent: no state, no RNG, no I/O
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectral/elbow"
//
//	res, err := elbow.SelectDimension(values, 2)
//	if err != nil {
//	  // handle ErrTooShort, ErrNegativeValue, ... via errors.Is
//	}
//	fmt.Println("elbows:", res.Elbows, "dimension:", res.Dimension)
//
// ⚠️ Known bias (intentional, covered by tests):
//
//	The per-group Gaussian model strongly rewards isolating the single
//	largest value and penalizes a long run of close-but-not-identical
//	leading values.  On graphs with many nearly equal leading singular
//	values (e.g. planted partitions with weak between-block probability)
//	the selected dimension lands far below the true block count.  This is
//	a property of the heuristic itself; the implementation reproduces it
//	rather than repairing it.
//
// Performance:
//
//   - Time:   O(n) per candidate scan via prefix sums ⇒ O(n) per elbow
//   - Memory: O(n)
//
// Errors:
//
//   - ErrBadElbowCount: nElbows < 1.
//   - ErrTooShort: fewer than 2 input values.
//   - ErrNegativeValue: a negative input value.
//   - ErrNaNInf: a NaN or ±Inf input value.
//   - ErrNotDescending: input not sorted in non-increasing order.
//   - ErrElbowsExhausted: the remaining window is too short for another elbow.
package elbow
