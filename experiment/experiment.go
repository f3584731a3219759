package experiment

import (
	"github.com/katalvlaran/spectral/elbow"
	"github.com/katalvlaran/spectral/sbm"
	"github.com/katalvlaran/spectral/spectrum"
)

// Run executes one planted-partition experiment.
//
// Algorithm Outline:
//  1. Apply defaults (Components, NumElbows) and validate the config.
//  2. Sample the k-block planted partition deterministically from Seed.
//  3. Compute the full singular-value spectrum of the adjacency.
//  4. Truncate the spectrum to its leading Components values.
//  5. Select NumElbows elbows over the head; the last one is the dimension.
//
// Run is a pure function of its Config: repeated calls return identical
// Reports.
//
// Complexity: dominated by the SVD, O(V³) time and O(V²) memory for the
// dense V×V adjacency.
func Run(cfg Config) (Report, error) {
	cfg = applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	model := sbm.PlantedPartition(cfg.Blocks, cfg.BlockSize, cfg.Within, cfg.Between)
	adj, labels, err := sbm.Sample(model, sbm.SampleOptions{Seed: cfg.Seed})
	if err != nil {
		return Report{}, err
	}

	values, err := spectrum.SingularValues(adj)
	if err != nil {
		return Report{}, err
	}

	head := values
	if cfg.Components < len(values) {
		head = values[:cfg.Components]
	}

	sel, err := elbow.SelectDimension(head, cfg.NumElbows)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Values:       head,
		SpectrumSize: len(values),
		Elbows:       sel.Elbows,
		Dimension:    sel.Dimension,
		Labels:       labels,
	}, nil
}

// applyDefaults fills zero-valued optional fields.
func applyDefaults(cfg Config) Config {
	if cfg.Components == 0 {
		cfg.Components = DefaultComponents
	}
	if cfg.NumElbows == 0 {
		cfg.NumElbows = DefaultNumElbows
	}

	return cfg
}
