package lens

import "strings"

// countPresent returns how many markers occur in text. A marker is a
// fixed substring and counts once regardless of repetition. Text must
// already be lowercased.
func countPresent(text string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(text, m) {
			n++
		}
	}
	return n
}

// density normalizes a marker count by text length into [0, 1].
func density(text string, markers []string, wordCount int) float64 {
	score := float64(countPresent(text, markers)) / (float64(wordCount)*0.05 + 1)
	if score > 1 {
		return 1
	}
	return score
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
