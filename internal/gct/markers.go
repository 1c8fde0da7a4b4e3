package gct

import "strings"

// Marker vocabularies. A marker is a fixed substring; each marker
// counts once per text regardless of how often it repeats.

var clinicalDetachmentMarkers = []string{
	"the patient", "case", "presented", "expired", "passed",
	"prognosis", "outcome", "treatment", "protocol",
}

var humanConnectionMarkers = []string{
	"i", "we", "felt", "feel", "hard", "difficult", "tears",
	"family", "mother", "father", "child", "loved", "miss",
}

var griefMarkers = []string{
	"lost", "death", "died", "passed", "gone", "miss",
	"another one", "how many more", "can't take", "breaking",
}

var wisdomMarkers = []string{
	"learned", "understand", "realize", "meaning", "purpose",
	"grateful", "honored", "privilege", "taught me", "gift",
}

var burnoutMarkers = []string{
	"exhausted", "can't", "don't care", "what's the point",
	"numb", "empty", "mechanical", "going through motions",
}

var fatigueMarkers = []string{
	"nightmares", "intrusive", "can't stop thinking",
	"haunted", "triggered", "reminded", "flashback",
}

var growthMarkers = []string{
	"stronger", "perspective", "appreciate", "relationship",
	"meaning", "spiritual", "growth", "transformed",
}

var collectiveMarkers = []string{
	"we", "team", "colleagues", "nurses", "staff",
}

var isolationMarkers = []string{
	"alone", "nobody", "by myself", "no one",
}

var temporalMarkers = []string{
	"years", "months", "always", "never", "every time",
	"another", "again", "keeps happening",
}

var suppressionMarkers = []string{
	"held it together", "stayed strong",
}

// countPresent returns how many of the markers occur in text.
// Text must already be lowercased.
func countPresent(text string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(text, m) {
			n++
		}
	}
	return n
}

// anyPresent reports whether at least one marker occurs in text.
func anyPresent(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
