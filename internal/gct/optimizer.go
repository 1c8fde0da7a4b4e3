package gct

// Default Michaelis-Menten constants for emotional activation smoothing.
const (
	DefaultKm = 0.25 // half-saturation constant
	DefaultKi = 1.5  // substrate inhibition constant

	// DefaultDemand is the compassion demand assumed when the
	// calibration does not specify a baseline.
	DefaultDemand = 0.5
)

// Optimizer smooths emotional activation and estimates compassion
// reserve. Too little activation means detachment, too much means
// overwhelm; the rational-function curve keeps the optimized value in
// a sustainable band.
type Optimizer struct {
	km float64
	ki float64
}

// NewOptimizer creates an optimizer. Zero arguments select defaults.
func NewOptimizer(km, ki float64) *Optimizer {
	if km <= 0 {
		km = DefaultKm
	}
	if ki <= 0 {
		ki = DefaultKi
	}
	return &Optimizer{km: km, ki: ki}
}

// OptimizeQ applies Michaelis-Menten smoothing with substrate
// inhibition to raw emotional activation. The result is capped at 0.95.
func (o *Optimizer) OptimizeQ(raw float64) float64 {
	if raw <= 0 {
		return 0
	}
	denom := o.km + raw + raw*raw/o.ki
	if denom == 0 {
		return 0
	}
	opt := raw / denom
	if opt > 0.95 {
		return 0.95
	}
	return opt
}

// Reserve estimates remaining compassion capacity from current
// activation, cumulative grief load, and days without rest. demand is
// the context's compassion baseline (DefaultDemand when zero); higher
// demand contexts deplete reserves faster. The floor is 0.05.
func (o *Optimizer) Reserve(q, load float64, daysSinceRest int, demand float64) float64 {
	if demand <= 0 {
		demand = DefaultDemand
	}

	base := 1.0 - o.OptimizeQ(q)

	loadDepletion := load * 0.15 * (demand / DefaultDemand)
	if loadDepletion > 0.5 {
		loadDepletion = 0.5
	}

	fatigue := float64(daysSinceRest) * 0.02
	if fatigue > 0.3 {
		fatigue = 0.3
	}

	reserve := base - loadDepletion - fatigue
	if reserve < 0.05 {
		return 0.05
	}
	return reserve
}
