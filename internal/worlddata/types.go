// Package worlddata holds the immutable data model parsed from a sector's
// canonical survey table and metadata document: Sector, Subsector, and World.
package worlddata

import "github.com/sectorforge/tradecore/internal/hexcoord"

// Zone is a world's travel zone classification.
type Zone string

const (
	ZoneGreen Zone = "Green"
	ZoneAmber Zone = "Amber"
	ZoneRed   Zone = "Red"
)

// Starport grades, from best to worst, plus the no-starport marker.
const starportGrades = "ABCDEX"

// UWP is the Universal World Profile: eight characters encoding Starport,
// Size, Atmosphere, Hydrographics, Population, Government, Law, and Tech
// Level.
type UWP struct {
	Starport      byte // 'A'..'E' or 'X'
	Size          int  // 0..10 (hex digit 0..A)
	Atmosphere    int  // 0..15
	Hydrographics int  // 0..10
	Population    int  // 0..15
	Government    int  // 0..15
	Law           int  // 0..15
	TechLevel     int  // 0..35 (base36 digit, 0..Z)
}

// CanLand reports whether the starport grade admits starships at all.
func (u UWP) CanLand() bool {
	return u.Starport != 'X'
}

// EconomicExtension holds the resources/labor/infrastructure/efficiency
// digits of a world's Ex column (e.g. "(849+4)"), as parsed from the survey
// table; they are not computed from the UWP.
type EconomicExtension struct {
	Resources      int
	Labor          int
	Infrastructure int
	Efficiency     int // signed
}

// Derived holds the fields the World Classifier computes from a World's raw
// attributes, plus the parsed Ex. The survey parser creates it with only Ex
// set; for worlds built any other way it is nil until classification runs.
// It is immutable after classification.
type Derived struct {
	TradeClassifications []string
	Importance            int
	Ex                     EconomicExtension
	IsCapital              bool
	IsSubsectorCapital     bool
	IsSectorCapital        bool
	IsImportant            bool
	CanRefuel              bool
}

// HasClass reports whether code (e.g. "Ag", "Ri") is among the world's
// derived Trade Classifications. It is a no-op returning false before
// classification has run.
func (d *Derived) HasClass(code string) bool {
	if d == nil {
		return false
	}
	for _, c := range d.TradeClassifications {
		if c == code {
			return true
		}
	}
	return false
}

// World is a single star system / world record, keyed uniquely by its
// absolute coordinate within the charted space.
type World struct {
	SectorName string
	Hex        hexcoord.Hex
	Abs        hexcoord.Absolute

	Name string
	UWP  UWP

	// RawTradeClassifications are the codes as printed in the survey table,
	// before the classifier recomputes them from the UWP.
	RawTradeClassifications []string

	Zone Zone

	PopMultiplier int // digit 1..9, paired with UWP.Population as the exponent
	Belts         int
	GasGiants     int

	Allegiance string
	Bases      []string // base codes present, e.g. "N", "S", "D", "W"
	Stellar    []string // stellar data tokens, e.g. "G2", "V"

	Nobles string // raw nobility rank letters, empty if absent

	Cx string // cultural extension, raw token

	Derived *Derived
}

// Key returns the world's absolute-coordinate string, used as the stable
// tie-break key required for deterministic sort orders and edge weights.
func (w *World) Key() string {
	return w.Abs.String()
}

// Population returns the world's population as multiplier * 10^exponent.
func (w *World) Population() float64 {
	if w.PopMultiplier == 0 {
		return 0
	}
	pop := float64(w.PopMultiplier)
	for i := 0; i < w.UWP.Population; i++ {
		pop *= 10
	}
	return pop
}

// Subsector is an 8x10 hex block within a Sector, identified A-P.
type Subsector struct {
	Letter string
	Name   string
}

// Sector is a 32x40 hex region, immutable after parse.
type Sector struct {
	Name         string
	Abbreviation string
	Offset       hexcoord.Offset

	// Worlds is keyed by absolute coordinate for O(1) lookup; WorldList
	// holds the same worlds sorted by absolute coordinate for deterministic
	// iteration and reporting.
	Worlds    map[hexcoord.Absolute]*World
	WorldList []*World

	Subsectors   map[string]Subsector // letter -> Subsector
	Allegiances  map[string]string    // code -> name
}

// SubsectorLetter returns the A-P subsector letter containing hex h.
// Subsectors tile the sector in a 4x4 grid of 8x10 blocks.
func SubsectorLetter(h hexcoord.Hex) string {
	col := (h.Col - 1) / 8
	row := (h.Row - 1) / 10
	return string(rune('A' + row*4 + col))
}

// Lookup returns the world at abs, if any world in this sector occupies it.
func (s *Sector) Lookup(abs hexcoord.Absolute) (*World, bool) {
	w, ok := s.Worlds[abs]
	return w, ok
}
