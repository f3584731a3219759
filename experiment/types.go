// Package experiment defines the experiment configuration, report, and
// sentinel errors.
package experiment

import "errors"

// Sentinel errors for configuration validation. Pipeline-stage failures are
// returned as the sentinels of the originating package (sbm, spectrum, elbow).
var (
	// ErrBadGeometry indicates Blocks < 1, BlockSize < 1, or Components < 0.
	ErrBadGeometry = errors.New("experiment: blocks and block size must be >= 1, components >= 0")

	// ErrBadProbability indicates Within or Between outside [0,1] or NaN/Inf.
	ErrBadProbability = errors.New("experiment: probabilities must be finite and within [0,1]")

	// ErrBadSelection indicates NumElbows < 0.
	ErrBadSelection = errors.New("experiment: number of elbows must be >= 0")
)

// Defaults applied by Run when a Config field is left at its zero value.
const (
	// DefaultComponents is the spectrum head handed to the elbow selector.
	// Capping the retained rank mirrors truncated spectral embedding
	// pipelines; the selector never sees the full dense spectrum.
	DefaultComponents = 25

	// DefaultNumElbows is the standard two-elbow request: one elbow for the
	// dominant value, one for the signal/noise boundary.
	DefaultNumElbows = 2
)

// Config parameterizes one planted-partition experiment.
//
// Zero values select defaults where one exists: Components=0 ⇒
// DefaultComponents, NumElbows=0 ⇒ DefaultNumElbows, Seed=0 ⇒ the sampler's
// fixed default stream. Blocks, BlockSize, Within and Between carry no
// defaults and must be set.
type Config struct {
	Blocks     int     // number of planted blocks (k)
	BlockSize  int     // vertices per block
	Within     float64 // within-block edge probability
	Between    float64 // between-block edge probability
	Components int     // spectrum head size; capped at the vertex count
	NumElbows  int     // elbows requested from the selector
	Seed       int64   // sampling seed; 0 = default stream
}

// Validate checks the configuration after defaults are conceptually applied.
// It returns the first violated sentinel, or nil.
func (c Config) Validate() error {
	if c.Blocks < 1 || c.BlockSize < 1 || c.Components < 0 {
		return ErrBadGeometry
	}
	if !validProb(c.Within) || !validProb(c.Between) {
		return ErrBadProbability
	}
	if c.NumElbows < 0 {
		return ErrBadSelection
	}

	return nil
}

// validProb reports whether p is a finite probability in [0,1].
func validProb(p float64) bool {
	return p == p && p >= 0 && p <= 1 // p != p catches NaN; [0,1] excludes ±Inf
}

// Report is the outcome of one experiment run.
type Report struct {
	// Values is the spectrum head handed to the selector (length ≤ Components),
	// sorted descending.
	Values []float64

	// SpectrumSize is the length of the full spectrum before truncation
	// (the vertex count for a square adjacency).
	SpectrumSize int

	// Elbows are the selected 1-based elbow positions, strictly increasing.
	Elbows []int

	// Dimension is the recommended embedding dimension (last elbow).
	Dimension int

	// Labels are the true per-vertex block labels of the sampled graph.
	Labels []int
}
