// Package classify derives Trade Classifications, the Importance score, and
// other predicates from a World's raw UWP and base/zone/allegiance fields.
// Every function here is a pure function of its inputs, safe to run
// concurrently across worlds with no shared mutable state.
package classify

import (
	"sort"

	"github.com/sectorforge/tradecore/internal/worlddata"
)

// hasBase reports whether code is present among w.Bases.
func hasBase(w *worlddata.World, code string) bool {
	for _, b := range w.Bases {
		if b == code {
			return true
		}
	}
	return false
}

// TradeClassifications derives a world's Trade Classification codes from its
// UWP, per the following predicate table (the canonical rule-book ranges,
// spelled out once here so every caller and test references the same
// source of truth):
//
//	Ag (Agricultural)     Atmosphere 4..9  ∧ Hydrographics 4..8 ∧ Population 5..8
//	Na (Non-Agricultural) Atmosphere 0..3  ∧ Hydrographics 0..3 ∧ Population ≥ 6
//	In (Industrial)       Atmosphere ∈ {0,1,2,4,7,9,10..15} ∧ Population ≥ 9
//	Ni (Non-Industrial)   Population 1..6
//	Ri (Rich)             Government 4..9  ∧ Atmosphere ∈ {6,8} ∧ Population 6..8
//	Po (Poor)             Atmosphere 2..5  ∧ Hydrographics ≤ 3
//	Hi (High Population)  Population ≥ 9
//	Lo (Low Population)   Population 1..3
//	Ba (Barren)           Population = 0  ∧ Government = 0 ∧ Law = 0
//	As (Asteroid Belt)    Size = 0 ∧ Atmosphere = 0 ∧ Hydrographics = 0
//	De (Desert)           Atmosphere ≥ 2 ∧ Hydrographics = 0
//	Fl (Fluid Oceans)     Atmosphere 10..12 ∧ Hydrographics ≥ 1
//	Ga (Garden)           Size 5..8 ∧ Atmosphere ∈ {5,6,8} ∧ Hydrographics 5..7
//	Ht (High Tech)        Tech Level ≥ 12
//	Lt (Low Tech)         Tech Level 1..5
//	Va (Vacuum)           Atmosphere = 0
//	Wa (Water World)      Hydrographics = 10
//	Pr (Pre-Rich)         Government 0..5 ∧ Atmosphere 6..8 ∧ Population 5..7
//	Ph (Phosphoric)       Atmosphere ∈ {2,4}
//	Pi (Pre-Industrial)   Atmosphere 4..9 ∧ Hydrographics 7..8 ∧ Population 4..8
//	Mr (Military Rule)    both a Naval base and a Scout base present
//	Re (Reserve)          Travel Zone = Red
//	Fr (Frontier)         Travel Zone = Amber
//
// The result does not depend on RawTradeClassifications the survey table
// printed; it is recomputed from first principles, since spec invariants
// require classify to be trusted over parsed input.
func TradeClassifications(w *worlddata.World) []string {
	u := w.UWP
	var codes []string

	add := func(code string, ok bool) {
		if ok {
			codes = append(codes, code)
		}
	}

	add("Ag", between(u.Atmosphere, 4, 9) && between(u.Hydrographics, 4, 8) && between(u.Population, 5, 8))
	add("Na", between(u.Atmosphere, 0, 3) && between(u.Hydrographics, 0, 3) && u.Population >= 6)
	add("In", (contains(u.Atmosphere, 0, 1, 2, 4, 7, 9) || u.Atmosphere >= 10) && u.Population >= 9)
	add("Ni", between(u.Population, 1, 6))
	add("Ri", between(u.Government, 4, 9) && contains(u.Atmosphere, 6, 8) && between(u.Population, 6, 8))
	add("Po", between(u.Atmosphere, 2, 5) && u.Hydrographics <= 3)
	add("Hi", u.Population >= 9)
	add("Lo", between(u.Population, 1, 3))
	add("Ba", u.Population == 0 && u.Government == 0 && u.Law == 0)
	add("As", u.Size == 0 && u.Atmosphere == 0 && u.Hydrographics == 0)
	add("De", u.Atmosphere >= 2 && u.Hydrographics == 0)
	add("Fl", between(u.Atmosphere, 10, 12) && u.Hydrographics >= 1)
	add("Ga", between(u.Size, 5, 8) && contains(u.Atmosphere, 5, 6, 8) && between(u.Hydrographics, 5, 7))
	add("Ht", u.TechLevel >= 12)
	add("Lt", between(u.TechLevel, 1, 5))
	add("Va", u.Atmosphere == 0)
	add("Wa", u.Hydrographics == 10)
	add("Pr", between(u.Government, 0, 5) && between(u.Atmosphere, 6, 8) && between(u.Population, 5, 7))
	add("Ph", contains(u.Atmosphere, 2, 4))
	add("Pi", between(u.Atmosphere, 4, 9) && between(u.Hydrographics, 7, 8) && between(u.Population, 4, 8))

	if hasBase(w, "N") && hasBase(w, "S") {
		codes = append(codes, "Mr")
	}
	if w.Zone == worlddata.ZoneRed {
		codes = append(codes, "Re")
	}
	if w.Zone == worlddata.ZoneAmber {
		codes = append(codes, "Fr")
	}

	sort.Strings(codes)
	return dedupe(codes)
}

func between(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

func contains(v int, set ...int) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

func dedupe(codes []string) []string {
	if len(codes) < 2 {
		return codes
	}
	out := codes[:1]
	for _, c := range codes[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}

// has reports whether code is present in the (already-computed) classification list.
func has(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// Importance computes the Importance score (Ix), starting at 0 per spec:
// +1 for a high-grade starport, +1/+2 for Tech Level thresholds, -1 for a
// low-grade starport, -1 for low Tech Level, +1 each for Ag/Hi/In/Ri,
// +1 for high population, +1 for a Naval+Scout base pair, +1 for a way
// station base.
func Importance(w *worlddata.World, codes []string) int {
	u := w.UWP
	score := 0

	if u.Starport == 'A' || u.Starport == 'B' {
		score++
	}
	if u.Starport == 'D' || u.Starport == 'E' || u.Starport == 'X' {
		score--
	}
	if u.TechLevel >= 10 {
		score++
	}
	if u.TechLevel >= 16 {
		score++
	}
	if u.TechLevel <= 8 {
		score--
	}
	if has(codes, "Ag") {
		score++
	}
	if has(codes, "Hi") {
		score++
	}
	if has(codes, "In") {
		score++
	}
	if has(codes, "Ri") {
		score++
	}
	if u.Population >= 9 {
		score++
	}
	if hasBase(w, "N") && hasBase(w, "S") {
		score++
	}
	if hasBase(w, "W") {
		score++
	}

	return score
}

// CanRefuel reports whether a world can refuel starships: it has a gas
// giant, or its starport admits ships and it has surface water or is itself
// a water world.
func CanRefuel(w *worlddata.World, codes []string) bool {
	if !w.UWP.CanLand() {
		return w.GasGiants > 0
	}
	return w.UWP.Hydrographics > 0 || w.GasGiants > 0 || has(codes, "Wa")
}

// Classify runs the full classifier over a single world, populating its
// Derived fields in place. It preserves the Economic Extension the parser
// already extracted and recomputes everything else.
func Classify(w *worlddata.World, capitals Capitals) {
	if w.Derived == nil {
		w.Derived = &worlddata.Derived{}
	}
	codes := TradeClassifications(w)
	w.Derived.TradeClassifications = codes
	w.Derived.Importance = Importance(w, codes)
	w.Derived.CanRefuel = CanRefuel(w, codes)
	w.Derived.IsSubsectorCapital = capitals.IsSubsectorCapital(w)
	w.Derived.IsSectorCapital = capitals.IsSectorCapital(w)
	w.Derived.IsCapital = w.Derived.IsSubsectorCapital || w.Derived.IsSectorCapital
	w.Derived.IsImportant = w.Derived.Importance >= 4
}

// Capitals resolves whether a world is a subsector or sector capital. The
// caller supplies this (typically derived from the metadata document or a
// configured capital list), since capital status is not encoded in the UWP.
type Capitals interface {
	IsSubsectorCapital(w *worlddata.World) bool
	IsSectorCapital(w *worlddata.World) bool
}

// NoCapitals is a Capitals implementation that reports no capitals, used
// when no capital designation data is available.
type NoCapitals struct{}

func (NoCapitals) IsSubsectorCapital(*worlddata.World) bool { return false }
func (NoCapitals) IsSectorCapital(*worlddata.World) bool    { return false }

// RemarksCapitals is a Capitals implementation grounded on the survey
// table's own remarks column: "Cp" marks a sector capital ("Capital,
// polity" in the canonical second-survey remarks set) and "Cs" marks a
// subsector capital. World.RawTradeClassifications carries these codes
// verbatim as printed, before TradeClassifications recomputes the
// trade-code set from first principles, so this is the one place that
// still reads the raw column.
type RemarksCapitals struct{}

func (RemarksCapitals) IsSubsectorCapital(w *worlddata.World) bool {
	return hasRemark(w, "Cs")
}

func (RemarksCapitals) IsSectorCapital(w *worlddata.World) bool {
	return hasRemark(w, "Cp")
}

func hasRemark(w *worlddata.World, code string) bool {
	for _, r := range w.RawTradeClassifications {
		if r == code {
			return true
		}
	}
	return false
}

// ClassifyAll runs Classify over every world, distributed across a bounded
// worker pool. Each worker mutates only the Derived field of the world it
// owns, so no synchronization is required beyond the final join, matching
// the "embarrassingly parallel per-world" discipline of spec.md §2/§5.
func ClassifyAll(worlds []*worlddata.World, capitals Capitals, workers int) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(worlds) {
		workers = len(worlds)
	}
	if workers <= 1 {
		for _, w := range worlds {
			Classify(w, capitals)
		}
		return
	}

	jobs := make(chan *worlddata.World)
	done := make(chan struct{})

	for i := 0; i < workers; i++ {
		go func() {
			for w := range jobs {
				Classify(w, capitals)
			}
			done <- struct{}{}
		}()
	}

	go func() {
		for _, w := range worlds {
			jobs <- w
		}
		close(jobs)
	}()

	for i := 0; i < workers; i++ {
		<-done
	}
}
