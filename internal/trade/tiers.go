package trade

// TrafficClass tiers an edge's accumulated mass for downstream rendering.
type TrafficClass int

const (
	Minor TrafficClass = iota
	Feeder
	Main
	Intermediate
	Major
)

func (c TrafficClass) String() string {
	switch c {
	case Minor:
		return "Minor"
	case Feeder:
		return "Feeder"
	case Main:
		return "Main"
	case Intermediate:
		return "Intermediate"
	case Major:
		return "Major"
	default:
		return "Unknown"
	}
}

// TierThresholds are the lower-bound mass values for each class above
// Minor. Thresholds are ascending; a mass at or above Major's threshold is
// Major. Defaults are a geometric progression matching Mass's own
// exponential BTN-to-mass curve.
type TierThresholds struct {
	Feeder       float64
	Main         float64
	Intermediate float64
	Major        float64
}

// DefaultTierThresholds is the threshold table this implementation
// documents and versions, per spec.md §9.
func DefaultTierThresholds() TierThresholds {
	return TierThresholds{
		Feeder:       Mass(8),
		Main:         Mass(10),
		Intermediate: Mass(12),
		Major:        Mass(14),
	}
}

// guardBand is the minimum separation spec.md §9 requires between a mass
// value and a tier boundary before that value is trusted to be above it,
// to prevent last-bit floating-point summation-order differences from
// flipping a result's class across runs.
const guardBand = 1.0 / (1 << 45)

// Classify assigns a traffic class to an accumulated edge mass. A mass
// within guardBand×maxMass of a threshold is classified as belonging to the
// tier below, so tie-prone boundary values are stable regardless of the
// floating-point summation order that produced them.
func Classify(mass float64, maxMass float64, th TierThresholds) TrafficClass {
	band := guardBand * maxMass

	switch {
	case mass >= th.Major+band:
		return Major
	case mass >= th.Intermediate+band:
		return Intermediate
	case mass >= th.Main+band:
		return Main
	case mass >= th.Feeder+band:
		return Feeder
	default:
		return Minor
	}
}
