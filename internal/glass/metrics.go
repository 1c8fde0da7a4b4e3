package glass

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TranslationsTotal counts translations by resulting compassion state.
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reflectd",
			Subsystem: "glass",
			Name:      "translations_total",
			Help:      "Total number of translations by compassion state",
		},
		[]string{"state"},
	)

	// TranslateDuration tracks how long translations take.
	TranslateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "reflectd",
			Subsystem: "glass",
			Name:      "translate_duration_seconds",
			Help:      "Duration of translate operations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// observeTranslation records metrics for a completed translation.
func observeTranslation(state CompassionState, d time.Duration) {
	TranslationsTotal.WithLabelValues(string(state)).Inc()
	TranslateDuration.Observe(d.Seconds())
}
