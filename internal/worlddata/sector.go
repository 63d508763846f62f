package worlddata

import (
	"sort"

	"github.com/sectorforge/tradecore/internal/hexcoord"
)

// BuildSector assembles an immutable Sector from parsed worlds and the
// sector's metadata document. It is the point at which two worlds claiming
// the same absolute coordinate is detected and reported as a fatal
// InconsistentNeighborError, per the invariant that every world is uniquely
// keyed by absolute (x, y).
func BuildSector(name, abbreviation string, offset hexcoord.Offset, meta *Metadata, worlds []*World) (*Sector, error) {
	s := &Sector{
		Name:         name,
		Abbreviation: abbreviation,
		Offset:       offset,
		Worlds:       make(map[hexcoord.Absolute]*World, len(worlds)),
		WorldList:    make([]*World, 0, len(worlds)),
		Subsectors:   make(map[string]Subsector, len(meta.Subsectors)),
		Allegiances:  make(map[string]string, len(meta.Allegiances)),
	}

	for letter, subName := range meta.Subsectors {
		s.Subsectors[letter] = Subsector{Letter: letter, Name: subName}
	}
	for code, allegName := range meta.Allegiances {
		s.Allegiances[code] = allegName
	}

	// Sort by hex for deterministic WorldList order independent of input
	// order (the parser emits worlds in file order, which is not
	// guaranteed to be coordinate-sorted).
	sorted := make([]*World, len(worlds))
	copy(sorted, worlds)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Abs.Less(sorted[j].Abs)
	})

	for _, w := range sorted {
		if existing, ok := s.Worlds[w.Abs]; ok {
			return nil, &InconsistentNeighborError{
				Sector: name,
				Abs:    w.Abs.String(),
				First:  existing.Name,
				Second: w.Name,
			}
		}
		s.Worlds[w.Abs] = w
		s.WorldList = append(s.WorldList, w)
	}

	return s, nil
}
