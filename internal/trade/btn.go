package trade

import (
	"math"

	"github.com/sectorforge/tradecore/internal/worlddata"
)

// classPairBonus computes the classification-pair adjustment to BTN per
// spec.md §4.6: complementary economies trade more, Poor worlds trade less.
// The bonus is symmetric in u and v, preserving the BTN(u,v) == BTN(v,u)
// invariant spec.md §8 requires before the distance penalty is applied.
func classPairBonus(u, v *worlddata.World) float64 {
	var bonus float64

	agNa := (u.Derived.HasClass("Ag") && v.Derived.HasClass("Na")) ||
		(v.Derived.HasClass("Ag") && u.Derived.HasClass("Na"))
	if agNa {
		bonus++
	}

	inNi := (u.Derived.HasClass("In") && v.Derived.HasClass("Ni")) ||
		(v.Derived.HasClass("In") && u.Derived.HasClass("Ni"))
	if inNi {
		bonus++
	}

	if u.Derived.HasClass("Po") || v.Derived.HasClass("Po") {
		bonus--
	}

	return bonus
}

// DistancePenalty derives the BTN distance penalty from a shortest-path
// length in parsecs (hex hops), per spec.md §4.6. This implementation uses
// one point of penalty per four parsecs, another of the open weight-formula
// choices spec.md §9 calls out as needing to be documented and versioned.
func DistancePenalty(hops int) float64 {
	return float64(hops) / 4.0
}

// BTNBeforeDistance returns WTN(u) + WTN(v) + classification-pair bonuses,
// i.e. BTN before the distance penalty is applied. Exposed separately so
// callers can verify the BTN(u,v) == BTN(v,u) symmetry invariant without
// needing a shortest-path length.
func BTNBeforeDistance(u, v *worlddata.World) float64 {
	return WTN(u) + WTN(v) + classPairBonus(u, v)
}

// BTN computes the Bilateral Trade Number for the pair (u, v) whose
// shortest-path length is hops parsecs, rounded to the nearest integer per
// the rulebook's convention of reporting BTN as a whole number.
func BTN(u, v *worlddata.World, hops int) int {
	raw := BTNBeforeDistance(u, v) - DistancePenalty(hops)
	return int(math.Round(raw))
}

// EligiblePair reports whether the pair (u, v) should be aggregated at all:
// BTN at or above minBTN, and neither endpoint Red-zoned (spec.md §4.6).
func EligiblePair(u, v *worlddata.World, hops, minBTN int) (btn int, ok bool) {
	if u.Zone == worlddata.ZoneRed || v.Zone == worlddata.ZoneRed {
		return 0, false
	}
	btn = BTN(u, v, hops)
	return btn, btn >= minBTN
}

// Mass converts a pair's BTN into the trade mass added to every edge of its
// shortest path. Each whole point of BTN above zero multiplies trade volume
// by √2 (doubling it every two points), matching the rulebook's order-of-magnitude flow table; this
// exponential form is itself an open implementation choice per spec.md §9.
func Mass(btn int) float64 {
	if btn <= 0 {
		return 0
	}
	return math.Pow(2, float64(btn)/2)
}
