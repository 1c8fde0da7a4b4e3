package lens

import (
	"fmt"
	"strings"
)

// GriefState is the current state of grief processing. Unprocessed
// grief accumulates as weight; processed grief compresses into
// knowledge that can serve others.
type GriefState string

const (
	GriefMinimal          GriefState = "minimal"
	GriefRawAccumulating  GriefState = "raw_accumulating"
	GriefProcessingActive GriefState = "processing_active"
	GriefIntegrating      GriefState = "integrating"
	GriefCompressed       GriefState = "compressed"
)

// GriefResult is the typed result of the grief accumulation lens.
type GriefResult struct {
	State            GriefState `json:"state"`
	RawLevel         float64    `json:"raw_grief_level"`
	ProcessedLevel   float64    `json:"processed_grief_level"`
	CompressionRatio float64    `json:"compression_ratio"`

	PatternDescription   string   `json:"pattern_description"`
	TransformationStatus string   `json:"transformation_status"`
	GrowthIndicators     []string `json:"growth_indicators"`
	ConcernIndicators    []string `json:"concern_indicators"`
	NextSteps            []string `json:"next_steps"`
}

var (
	rawGriefMarkers = []string{
		"lost", "died", "death", "passed", "gone",
		"another one", "how many more", "can't take this",
	}
	griefProcessingMarkers = []string{
		"thinking about", "trying to understand", "making sense",
		"working through", "processing", "grieving",
	}
	griefWisdomMarkers = []string{
		"learned", "taught me", "understand now", "realize",
		"gift", "grateful", "meaning", "purpose", "transformed",
	}
	griefGrowthMarkers = []string{
		"stronger", "deeper", "more compassionate", "appreciate",
		"perspective", "changed", "growth", "enriched",
	}
	griefConcernMarkers = []string{
		"overwhelmed", "too much", "can't handle", "breaking",
		"numb", "nothing left", "empty", "hollow",
	}
)

var griefGrowthNarratives = map[string]string{
	"stronger":          "Increased sense of personal strength",
	"deeper":            "Deepened capacity for connection/understanding",
	"more compassionate": "Enhanced compassion capacity",
	"appreciate":        "Greater appreciation for life/relationships",
	"perspective":       "Changed life priorities or perspective",
	"changed":           "Transformation in sense of self or values",
	"growth":            "Explicit recognition of growth from adversity",
	"enriched":          "Sense of enrichment from difficult experience",
}

var griefConcernNarratives = map[string]string{
	"overwhelmed":  "Overwhelm signals may indicate capacity exceeded",
	"too much":     "Sense of excessive load present",
	"can't handle": "Coping capacity may be strained",
	"breaking":     "Risk of decompensation indicated",
	"numb":         "Emotional numbing as protective mechanism",
	"nothing left": "Depletion signals present",
	"empty":        "Emotional exhaustion indicated",
	"hollow":       "Sense of emptiness or disconnection",
}

// GriefLens tracks grief accumulation and its transformation into
// accessible knowledge.
type GriefLens struct{}

// Ensure GriefLens implements Lens.
var _ Lens = GriefLens{}

// Name returns the registry name.
func (GriefLens) Name() string { return "grief" }

// Assess evaluates grief accumulation in text.
func (l GriefLens) Assess(text string) *GriefResult {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	if wordCount == 0 {
		return &GriefResult{
			State:                GriefMinimal,
			PatternDescription:   "No text to analyze",
			TransformationStatus: "Insufficient data",
		}
	}

	raw := density(lower, rawGriefMarkers, wordCount)
	processed := density(lower, griefProcessingMarkers, wordCount)
	wisdomCount := countPresent(lower, griefWisdomMarkers) + countPresent(lower, griefGrowthMarkers)
	wisdom := float64(wisdomCount) / (float64(wordCount)*0.05 + 1)
	if wisdom > 1 {
		wisdom = 1
	}

	ratio := wisdom / (raw + processed + 0.01)
	if ratio > 1 {
		ratio = 1
	}

	state := griefState(raw, processed, wisdom)

	return &GriefResult{
		State:                state,
		RawLevel:             raw,
		ProcessedLevel:       processed,
		CompressionRatio:     ratio,
		PatternDescription:   griefPattern(state, raw, wisdom),
		TransformationStatus: griefTransformation(ratio, state),
		GrowthIndicators:     markerNarratives(lower, griefGrowthMarkers, griefGrowthNarratives),
		ConcernIndicators:    markerNarratives(lower, griefConcernMarkers, griefConcernNarratives),
		NextSteps:            griefNextSteps(state),
	}
}

// View implements Lens.
func (l GriefLens) View(text string, _ ViewOptions) (*Report, error) {
	r := l.Assess(text)
	return &Report{
		Lens:           l.Name(),
		Classification: string(r.State),
		Scores: map[string]float64{
			"raw_grief_level":       r.RawLevel,
			"processed_grief_level": r.ProcessedLevel,
			"compression_ratio":     r.CompressionRatio,
		},
		Sections: []Section{
			{Title: "Pattern", Items: []string{r.PatternDescription}},
			{Title: "Transformation", Items: []string{r.TransformationStatus}},
			{Title: "Growth indicators", Items: r.GrowthIndicators},
			{Title: "Concern indicators", Items: r.ConcernIndicators},
			{Title: "Next steps", Items: r.NextSteps},
		},
	}, nil
}

func griefState(raw, processed, wisdom float64) GriefState {
	switch {
	case raw < 0.2 && processed < 0.2 && wisdom < 0.2:
		return GriefMinimal
	case wisdom > 0.5 && raw < 0.3:
		return GriefCompressed
	case processed > 0.4 && wisdom > 0.3:
		return GriefIntegrating
	case processed > 0.4:
		return GriefProcessingActive
	case raw > 0.3 && wisdom < 0.3:
		return GriefRawAccumulating
	default:
		return GriefProcessingActive
	}
}

func griefPattern(state GriefState, raw, wisdom float64) string {
	switch state {
	case GriefMinimal:
		return "Low grief markers detected. This may reflect low exposure, " +
			"effective ongoing processing, or text that didn't capture grief content."
	case GriefRawAccumulating:
		return fmt.Sprintf("Raw grief level: %.0f%%. Grief appears to be accumulating "+
			"faster than processing. This is common in high-volume settings but may "+
			"benefit from dedicated processing time.", raw*100)
	case GriefProcessingActive:
		return "Active processing indicators present. The work of meaning-making " +
			"appears to be underway. This is the path from weight to wisdom."
	case GriefIntegrating:
		return "Integration occurring. Grief is finding its place alongside purpose " +
			"and meaning. This is post-traumatic growth in process."
	case GriefCompressed:
		return fmt.Sprintf("Wisdom level: %.0f%%. Significant transformation evident. "+
			"Grief has compressed into accessible knowledge. This wisdom can now "+
			"serve others.", wisdom*100)
	default:
		return "State requires further analysis."
	}
}

func griefTransformation(ratio float64, state GriefState) string {
	switch {
	case state == GriefCompressed:
		return "Transformation largely complete. The compressed wisdom from this " +
			"suffering can now benefit others."
	case ratio > 0.6:
		return "Strong transformation occurring. Grief becoming wisdom."
	case ratio > 0.3:
		return "Transformation in progress. Some grief processing effectively."
	case ratio > 0.1:
		return "Early transformation. Processing capacity may need support."
	default:
		return "Limited transformation detected. Deliberate processing may help."
	}
}

func griefNextSteps(state GriefState) []string {
	switch state {
	case GriefRawAccumulating:
		return []string{
			"Consider dedicated time for grief processing",
			"Deliberate rumination (controlled, time-bounded) may help",
			"Sharing with trusted colleague can facilitate processing",
		}
	case GriefProcessingActive:
		return []string{
			"Continue processing work; transformation underway",
			"Ask: what is this loss teaching me?",
			"Consider what wisdom could serve others",
		}
	case GriefIntegrating:
		return []string{
			"Integration occurring; continue supportive practices",
			"Notice how this loss has changed your practice",
			"Consider sharing insights with others in similar work",
		}
	case GriefCompressed:
		return []string{
			"Consider sharing accumulated wisdom with colleagues",
			"This transformation can benefit those earlier in the journey",
			"Mentorship role may be natural extension of this growth",
		}
	default:
		return nil
	}
}

// markerNarratives returns the narrative for each marker present in text.
func markerNarratives(text string, markers []string, narratives map[string]string) []string {
	var out []string
	for _, m := range markers {
		if !strings.Contains(text, m) {
			continue
		}
		if narrative, ok := narratives[m]; ok {
			out = append(out, narrative)
		}
	}
	return out
}
