package gct

// Calibration adjusts scoring weights for a clinical context.
type Calibration struct {
	// GriefWeight scales raw emotional intensity and grief load.
	// Above 1.0 in contexts where higher grief intensity is expected.
	GriefWeight float64
	// WisdomAcceleration scales accumulated wisdom. Below 1.0 where
	// wisdom is typically slower to develop.
	WisdomAcceleration float64
	// CompassionBaseline is the expected compassion demand of the
	// context; higher demand depletes reserves faster.
	CompassionBaseline float64
}

var calibrations = map[ClinicalContext]Calibration{
	ContextPediatricOncology: {
		GriefWeight:        1.3,
		WisdomAcceleration: 0.8,
		CompassionBaseline: 0.7,
	},
	ContextPalliativeCare: {
		GriefWeight:        1.0,
		WisdomAcceleration: 1.2,
		CompassionBaseline: 0.6,
	},
	ContextGeneralOncology: {
		GriefWeight:        1.0,
		WisdomAcceleration: 1.0,
		CompassionBaseline: 0.5,
	},
}

// CalibrationFor returns the calibration for a clinical context.
// Contexts without a dedicated calibration fall back to general oncology.
func CalibrationFor(c ClinicalContext) Calibration {
	if cal, ok := calibrations[c]; ok {
		return cal
	}
	return calibrations[ContextGeneralOncology]
}
