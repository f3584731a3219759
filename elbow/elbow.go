package elbow

import "math"

// SelectDimension — profile-likelihood elbow selection (Zhu & Ghodsi).
//
// Description:
//
//	Given singular values sorted in non-increasing order, SelectDimension
//	locates up to nElbows "elbows": split points after which the magnitude
//	regime changes. The position of the last elbow is the recommended
//	embedding dimension.
//
// Algorithm Outline (per elbow, over the current window w of length m):
//  1. For each candidate split q = 1..m-1:
//     group1 = w[:q], group2 = w[q:], both non-empty.
//  2. Fit each group's mean by maximum likelihood and pool a shared
//     variance estimate σ̂² = (SS₁ + SS₂) / m, where SSg is the
//     within-group sum of squared deviations.
//  3. The profile log-likelihood collapses to
//     L(q) = -m/2 · (log(2π·σ̂²) + 1),
//     i.e. maximizing L(q) ⇔ minimizing the pooled SS.
//     σ̂² = 0 (a perfect two-level fit) scores +Inf.
//  4. Choose the q maximizing L(q); ties resolve to the smallest q
//     (earliest elbow).
//  5. Recurse: the next elbow is searched in w[q:] only, so elbow
//     positions are strictly increasing.
//
// The candidate scan uses prefix sums of values and squares, so each elbow
// costs O(m) time after an O(n) setup.
//
// Complexity:
//
//	Time   = O(n · nElbows)
//	Memory = O(n)
//
// Errors:
//   - ErrBadElbowCount    — nElbows < 1.
//   - ErrTooShort         — len(values) < 2.
//   - ErrNaNInf           — non-finite input value.
//   - ErrNegativeValue    — negative input value.
//   - ErrNotDescending    — input not sorted non-increasing.
//   - ErrElbowsExhausted  — fewer elbows exist than requested.
func SelectDimension(values []float64, nElbows int) (Result, error) {
	if nElbows < 1 {
		return Result{}, ErrBadElbowCount
	}
	if err := validateSequence(values); err != nil {
		return Result{}, err
	}

	elbows := make([]int, 0, nElbows)
	start := 0 // absolute offset of the current search window
	for e := 0; e < nElbows; e++ {
		window := values[start:]
		if len(window) < 2 {
			return Result{}, ErrElbowsExhausted
		}
		start += bestSplit(window)
		elbows = append(elbows, start)
	}

	return Result{Elbows: elbows, Dimension: elbows[len(elbows)-1]}, nil
}

// Likelihoods returns the profile log-likelihood of every candidate split of
// values: entry q-1 scores the partition {values[:q], values[q:]} for
// q = 1..len(values)-1. A +Inf entry marks a perfect two-level fit.
//
// The returned slice backs scree-style inspection (cmd/spectral); the argmax
// of the slice equals the first elbow reported by SelectDimension.
//
// Complexity: O(n) time, O(n) memory.
func Likelihoods(values []float64) ([]float64, error) {
	if err := validateSequence(values); err != nil {
		return nil, err
	}

	m := len(values)
	sum, sumSq := prefixSums(values)
	out := make([]float64, m-1)
	for q := 1; q < m; q++ {
		out[q-1] = profileLogLikelihood(sum, sumSq, q, m)
	}

	return out, nil
}

// validateSequence enforces the input contract shared by all entry points:
// at least two finite, non-negative values in non-increasing order.
func validateSequence(values []float64) error {
	if len(values) < 2 {
		return ErrTooShort
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegativeValue
		}
		if i > 0 && v > values[i-1] {
			return ErrNotDescending
		}
	}

	return nil
}

// bestSplit returns the candidate split q in [1, len(w)-1] maximizing the
// profile log-likelihood over window w. Ties resolve to the smallest q.
func bestSplit(w []float64) int {
	m := len(w)
	sum, sumSq := prefixSums(w)

	bestQ := 1
	bestLL := math.Inf(-1)
	for q := 1; q < m; q++ {
		ll := profileLogLikelihood(sum, sumSq, q, m)
		if ll > bestLL {
			bestLL = ll
			bestQ = q
		}
	}

	return bestQ
}

// prefixSums returns cumulative sums and sums of squares of w:
// sum[i] = Σ w[:i], sumSq[i] = Σ w[:i]².
func prefixSums(w []float64) (sum, sumSq []float64) {
	sum = make([]float64, len(w)+1)
	sumSq = make([]float64, len(w)+1)
	for i, v := range w {
		sum[i+1] = sum[i] + v
		sumSq[i+1] = sumSq[i] + v*v
	}

	return sum, sumSq
}

// profileLogLikelihood scores the split {w[:q], w[q:]} of an m-value window
// under two Gaussians with free means and a shared pooled ML variance.
//
// With σ̂² = (SS₁+SS₂)/m the summed log-density collapses to
// -m/2·(log(2π·σ̂²)+1). A zero pooled variance means both groups are
// constant: the fit is exact and scores +Inf.
func profileLogLikelihood(sum, sumSq []float64, q, m int) float64 {
	ss := groupSS(sum, sumSq, 0, q) + groupSS(sum, sumSq, q, m)
	if ss <= 0 {
		return math.Inf(1)
	}
	sigma2 := ss / float64(m)

	return -0.5 * float64(m) * (math.Log(2*math.Pi*sigma2) + 1)
}

// groupSS returns the within-group sum of squared deviations of w[lo:hi]
// from its mean, via the prefix sums. Rounding may produce a tiny negative
// value for near-constant groups; callers treat ss <= 0 as an exact fit.
func groupSS(sum, sumSq []float64, lo, hi int) float64 {
	n := float64(hi - lo)
	s := sum[hi] - sum[lo]

	return (sumSq[hi] - sumSq[lo]) - s*s/n
}
