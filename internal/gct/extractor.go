package gct

import (
	"math"
	"strings"
)

// Extractor computes the GCT variable vector from reflection text.
type Extractor struct {
	cal Calibration
}

// NewExtractor creates an extractor calibrated for a clinical context.
func NewExtractor(cal Calibration) *Extractor {
	if cal == (Calibration{}) {
		cal = CalibrationFor(ContextGeneralOncology)
	}
	return &Extractor{cal: cal}
}

// Extract computes all variables from a reflection. Empty input yields
// the zero vector. CompassionReserve is left at zero; it is filled in
// by the Optimizer, which needs the optimized Q.
func (e *Extractor) Extract(text string) Variables {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(lower))
	if wordCount == 0 {
		return Variables{}
	}

	clinicalCount := countPresent(lower, clinicalDetachmentMarkers)
	humanCount := countPresent(lower, humanConnectionMarkers)

	// Psi is high when clinical and human frames are both present.
	clinicalRatio := float64(clinicalCount) / (float64(wordCount)*0.1 + 1)
	humanRatio := float64(humanCount) / (float64(wordCount)*0.1 + 1)
	psi := clamp01((clinicalRatio + humanRatio) / 2 * 2)

	wisdomCount := countPresent(lower, wisdomMarkers)
	growthCount := countPresent(lower, growthMarkers)
	rho := clamp01(float64(wisdomCount+growthCount) / (float64(wordCount)*0.05 + 1))
	rho = clamp01(rho * e.cal.WisdomAcceleration)

	griefCount := countPresent(lower, griefMarkers)
	intensity := float64(griefCount) / (float64(wordCount)*0.05 + 1)
	// Suppressed emotion is still present.
	if anyPresent(lower, suppressionMarkers) {
		intensity *= 1.5
	}
	q := clamp01(intensity * e.cal.GriefWeight)

	collectiveCount := countPresent(lower, collectiveMarkers)
	f := clamp01(float64(collectiveCount) / (float64(wordCount)*0.03 + 1))
	if countPresent(lower, isolationMarkers) > 0 {
		f *= 0.5
	}

	tau := clamp01(float64(countPresent(lower, temporalMarkers)) / 3)

	lambda := math.Abs(clinicalRatio - humanRatio)

	burnoutCount := countPresent(lower, burnoutMarkers)
	fatigueCount := countPresent(lower, fatigueMarkers)

	rawGrief := griefCount + fatigueCount
	processedWisdom := wisdomCount + growthCount
	compression := 0.5 // no grief present to process
	if rawGrief > 0 {
		compression = math.Min(float64(processedWisdom)/float64(rawGrief), 1.0)
	}

	load := clamp01(float64(griefCount+burnoutCount+fatigueCount) / (float64(wordCount)*0.05 + 1))
	load = clamp01(load * e.cal.GriefWeight)

	return Variables{
		Psi:               psi,
		Rho:               rho,
		Q:                 q,
		F:                 f,
		Tau:               tau,
		Lambda:            lambda,
		WisdomCompression: compression,
		GriefLoad:         load,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
