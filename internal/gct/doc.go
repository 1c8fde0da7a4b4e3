// Package gct extracts the GCT variable vector from free-text clinician
// reflections.
//
// Scoring is deliberately shallow: each dimension counts which fixed
// marker substrings are present in the lowercased text, normalizes the
// count by text length into a bounded [0,1] score, and derives a small
// set of secondary measures (wisdom compression, grief load, compassion
// reserve) from the primary scores. The Optimizer applies
// Michaelis-Menten smoothing to emotional activation so that extreme
// raw scores saturate instead of pinning to 1.0.
package gct
