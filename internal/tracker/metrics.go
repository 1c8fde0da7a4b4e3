package tracker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PointsTotal counts recorded tracking points.
	PointsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "reflectd",
			Subsystem: "tracker",
			Name:      "points_total",
			Help:      "Total number of recorded tracking points",
		},
	)

	// ReserveGauge exposes the most recent compassion reserve level.
	ReserveGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "reflectd",
			Subsystem: "tracker",
			Name:      "compassion_reserve",
			Help:      "Compassion reserve of the most recent tracking point",
		},
	)

	// GriefLoadGauge exposes the most recent cumulative grief load.
	GriefLoadGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "reflectd",
			Subsystem: "tracker",
			Name:      "grief_load",
			Help:      "Cumulative grief load of the most recent tracking point",
		},
	)

	// WisdomGauge exposes the most recent accumulated wisdom level.
	WisdomGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "reflectd",
			Subsystem: "tracker",
			Name:      "wisdom",
			Help:      "Accumulated wisdom of the most recent tracking point",
		},
	)
)

// observePoint updates metrics for a newly recorded point.
func observePoint(p Point) {
	PointsTotal.Inc()
	ReserveGauge.Set(p.CompassionReserve)
	GriefLoadGauge.Set(p.GriefLoad)
	WisdomGauge.Set(p.Rho)
}
