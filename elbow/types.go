// Package elbow defines result types and sentinel errors for
// profile-likelihood elbow selection.
package elbow

import "errors"

// Sentinel errors for elbow selection. All public entry points return these
// sentinels directly; tests match them via errors.Is.
//
// Validation priority (enforced in tests):
// elbow count -> length -> NaN/Inf -> negative -> ordering.
var (
	// ErrBadElbowCount indicates nElbows < 1.
	ErrBadElbowCount = errors.New("elbow: number of elbows must be >= 1")

	// ErrTooShort indicates the input sequence has fewer than 2 values.
	ErrTooShort = errors.New("elbow: input must contain at least 2 values")

	// ErrNaNInf indicates a NaN or ±Inf value in the input sequence.
	ErrNaNInf = errors.New("elbow: NaN or Inf encountered")

	// ErrNegativeValue indicates a negative value in the input sequence.
	ErrNegativeValue = errors.New("elbow: values must be non-negative")

	// ErrNotDescending indicates the input is not sorted in non-increasing order.
	ErrNotDescending = errors.New("elbow: values must be sorted descending")

	// ErrElbowsExhausted indicates the sequence cannot support another elbow:
	// fewer than 2 values remain after the previously selected elbow.
	ErrElbowsExhausted = errors.New("elbow: sequence exhausted before all requested elbows were found")
)

// Result holds the outcome of a SelectDimension call.
//
// Elbows are 1-based positions into the original sequence: Elbows[i] is the
// index of the last value of the i-th "signal" group. They are strictly
// increasing and each lies in [1, len(values)-1].
//
// Dimension is the recommended embedding dimension: the position of the last
// elbow found. It always lies in [1, len(values)].
type Result struct {
	Elbows    []int
	Dimension int
}
