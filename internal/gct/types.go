package gct

import (
	"fmt"
	"strings"
)

// ClinicalContext identifies the specialty whose calibration shapes scoring.
type ClinicalContext string

const (
	ContextPediatricOncology ClinicalContext = "pediatric_oncology"
	ContextAdultOncology     ClinicalContext = "adult_oncology"
	ContextNeuroOncology     ClinicalContext = "neuro_oncology"
	ContextHematology        ClinicalContext = "hematology"
	ContextPalliativeCare    ClinicalContext = "palliative_care"
	ContextHospice           ClinicalContext = "hospice"
	ContextEmergency         ClinicalContext = "emergency"
	ContextICU               ClinicalContext = "icu"
	ContextGeneralOncology   ClinicalContext = "general_oncology"
)

// knownContexts is the set of contexts accepted by ParseClinicalContext.
var knownContexts = map[ClinicalContext]bool{
	ContextPediatricOncology: true,
	ContextAdultOncology:     true,
	ContextNeuroOncology:     true,
	ContextHematology:        true,
	ContextPalliativeCare:    true,
	ContextHospice:           true,
	ContextEmergency:         true,
	ContextICU:               true,
	ContextGeneralOncology:   true,
}

// ParseClinicalContext parses a context name, case-insensitively.
func ParseClinicalContext(s string) (ClinicalContext, error) {
	c := ClinicalContext(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return ContextGeneralOncology, nil
	}
	if !knownContexts[c] {
		return "", fmt.Errorf("unknown clinical context: %q", s)
	}
	return c, nil
}

// Variables is the score vector extracted from a single reflection.
// All values are in [0,1] except Lambda, which is the absolute gap
// between the clinical and human frame ratios.
type Variables struct {
	// Psi measures integration of the clinical and human frames.
	Psi float64 `json:"psi"`
	// Rho measures accumulated wisdom (grief compressed into knowledge).
	Rho float64 `json:"rho"`
	// Q measures emotional engagement / moral activation.
	Q float64 `json:"q"`
	// F measures clinical community connection.
	F float64 `json:"f"`
	// Tau measures temporal pattern depth across losses.
	Tau float64 `json:"tau"`
	// Lambda measures frame ambiguity (clinical vs personal mixing).
	Lambda float64 `json:"lambda"`

	// WisdomCompression is the ratio of processed wisdom to raw grief.
	WisdomCompression float64 `json:"wisdom_compression_ratio"`
	// CompassionReserve is the estimated remaining emotional capacity.
	// Computed by the Optimizer, not by Extract.
	CompassionReserve float64 `json:"compassion_reserve"`
	// GriefLoad is the unprocessed-loss weight carried in the text.
	GriefLoad float64 `json:"cumulative_grief_load"`
}
