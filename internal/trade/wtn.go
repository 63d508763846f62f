// Package trade computes the World Trade Number and Bilateral Trade Number
// for world pairs, walks their shortest paths to accumulate traffic mass
// onto the edges of the navigation graph, and classifies edges into traffic
// tiers.
package trade

import (
	"math"

	"github.com/sectorforge/tradecore/internal/worlddata"
)

// starportWTNBonus is the per-grade contribution to WTN. The rulebook's own
// WTN table is a two-dimensional lookup keyed by population digit and
// starport grade; this implementation instead composes independent additive
// terms (population, starport, tech level, trade classification) and rounds
// to the nearest half-point, which spec.md §9 flags as an open
// implementation choice. Documented here because it is versioned: changing
// these constants changes every aggregated output.
var starportWTNBonus = map[byte]float64{
	'A': 0.5,
	'B': 0.25,
	'C': 0,
	'D': -0.25,
	'E': -0.5,
	'X': -1.0,
}

// WTN computes the World Trade Number for a classified world. w.Derived
// must be populated (internal/classify.Classify must have run first).
func WTN(w *worlddata.World) float64 {
	score := float64(w.UWP.Population) / 2.0

	if bonus, ok := starportWTNBonus[w.UWP.Starport]; ok {
		score += bonus
	}

	switch {
	case w.UWP.TechLevel >= 10:
		score += 0.5
	case w.UWP.TechLevel >= 5:
		score += 0.25
	}

	if w.Derived != nil {
		if w.Derived.HasClass("Ag") {
			score += 0.5
		}
		if w.Derived.HasClass("In") {
			score += 0.5
		}
		if w.Derived.HasClass("Hi") {
			score += 0.5
		}
		if w.Derived.HasClass("Ri") {
			score += 0.5
		}
		if w.Derived.HasClass("Po") {
			score -= 0.25
		}
		if w.Derived.HasClass("Lo") {
			score -= 0.25
		}
	}

	score = math.Round(score*2) / 2
	if score < 0 {
		score = 0
	}
	if score > 13 {
		score = 13
	}
	return score
}
