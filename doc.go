// Package spectral is a toolkit for studying the singular-value spectra of
// stochastic block model (SBM) graphs and for automatic dimensionality
// selection over those spectra.
//
// 🚀 What is spectral?
//
//	A small, deterministic library that brings together:
//		• SBM sampling: adjacency matrices from block probability matrices
//		• Spectra: descending singular values & adjacency spectral embedding
//		• Elbow selection: profile-likelihood dimensionality choice
//		• Experiments: the full simulate → decompose → select pipeline
//
// ✨ Why choose spectral?
//
//   - Reproducible – seeded RNG streams, no global state, no hidden time sources
//   - Honest – the elbow heuristic's documented biases are preserved and tested,
//     not papered over
//   - Minimal API – plain functions over gonum matrices and float64 slices
//
// Under the hood, everything is organized under four subpackages:
//
//	elbow/      — Zhu–Ghodsi profile-likelihood elbow selection
//	sbm/        — stochastic block model sampling & expected matrices
//	spectrum/   — singular values and spectral embeddings (gonum SVD)
//	experiment/ — end-to-end SBM spectrum experiments, used by cmd/spectral
//
// Quick sketch of the pipeline:
//
//	    B, sizes ──sample──▶ A ──SVD──▶ σ₁ ≥ σ₂ ≥ … ──elbow──▶ d̂
//
// The cmd/spectral binary runs single experiments or YAML-described suites
// and prints spectra with the detected elbows marked.
//
//	go get github.com/katalvlaran/spectral
package spectral
