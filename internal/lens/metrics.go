package lens

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ViewsTotal counts lens views by lens name.
var ViewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "reflectd",
		Subsystem: "lens",
		Name:      "views_total",
		Help:      "Total number of lens views by lens name",
	},
	[]string{"lens"},
)

// ObserveView records a completed lens view.
func ObserveView(name string) {
	ViewsTotal.WithLabelValues(name).Inc()
}
