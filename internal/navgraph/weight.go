package navgraph

import "github.com/sectorforge/tradecore/internal/worlddata"

// WeightConfig tunes the edge-weight formula. Every field must keep the
// combined weight strictly positive for the minimum edge distance of 1; see
// Weight for the single source of truth on how these combine.
type WeightConfig struct {
	// NoRefuelPenalty is added when neither endpoint can refuel a ship.
	NoRefuelPenalty float64
	// AmberSurcharge is added once per Amber-zoned endpoint.
	AmberSurcharge float64
	// HighGradeBonus is subtracted when both endpoints have starport grade
	// A or B, encouraging routing through well-serviced "main" worlds.
	HighGradeBonus float64
}

// DefaultWeightConfig is the weight table this implementation documents and
// versions, per spec.md §9's note that the exact weight formula is an
// implementation choice. Changing these constants changes every aggregated
// output and must be called out as a breaking change.
func DefaultWeightConfig() WeightConfig {
	return WeightConfig{
		NoRefuelPenalty: 0.5,
		AmberSurcharge:  0.15,
		HighGradeBonus:  0.3,
	}
}

func isHighGradeStarport(w *worlddata.World) bool {
	return w.UWP.Starport == 'A' || w.UWP.Starport == 'B'
}

func canRefuel(w *worlddata.World) bool {
	return w.Derived != nil && w.Derived.CanRefuel
}

// weight computes an edge's (cost, zonePenalty) pair for the endpoints u, v
// separated by the given integer hex distance. zonePenalty exists only to
// break ties deterministically among equal-cost edges (spec.md §4.5): lower
// zonePenalty wins before falling back to lexicographic vertex key order.
//
//	cost = dist
//	     + NoRefuelPenalty   if neither endpoint can refuel
//	     + AmberSurcharge    once per Amber-zoned endpoint
//	     - HighGradeBonus    if both endpoints are starport A or B
//
// cost is always strictly positive because HighGradeBonus is configured
// below 1, the minimum possible dist.
func weight(u, v *worlddata.World, dist int, cfg WeightConfig) (cost float64, zonePenalty float64) {
	cost = float64(dist)

	if !canRefuel(u) && !canRefuel(v) {
		cost += cfg.NoRefuelPenalty
	}

	if u.Zone == worlddata.ZoneAmber {
		cost += cfg.AmberSurcharge
		zonePenalty++
	}
	if v.Zone == worlddata.ZoneAmber {
		cost += cfg.AmberSurcharge
		zonePenalty++
	}

	if isHighGradeStarport(u) && isHighGradeStarport(v) {
		cost -= cfg.HighGradeBonus
	}

	return cost, zonePenalty
}
