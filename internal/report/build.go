package report

import (
	"sort"

	"github.com/sectorforge/tradecore/internal/trade"
	"github.com/sectorforge/tradecore/internal/worlddata"
)

func worldName(worldByKey map[string]*worlddata.World, key string) string {
	if w, ok := worldByKey[key]; ok {
		return w.Name
	}
	return ""
}

func worldSector(worldByKey map[string]*worlddata.World, key string) string {
	if w, ok := worldByKey[key]; ok {
		return w.SectorName
	}
	return ""
}

// Build assembles a Report from an aggregation result: every edge with
// accumulated mass becomes a route row classified into a traffic tier,
// every world with outbound mass becomes a world-trade row, and every pair
// at or above minRouteBTN becomes a pair row. All three tables are sorted
// by their primary numeric metric descending, with the lexicographic world
// key as the deterministic secondary key (spec.md §4.7).
func Build(agg *trade.Aggregate, worldByKey map[string]*worlddata.World, th trade.TierThresholds, minRouteBTN int) *Report {
	r := &Report{}

	maxMass := 0.0
	for _, m := range agg.EdgeMass {
		if m > maxMass {
			maxMass = m
		}
	}

	for ek, mass := range agg.EdgeMass {
		r.Routes = append(r.Routes, RouteRow{
			WorldA:       ek.A,
			WorldAName:   worldName(worldByKey, ek.A),
			WorldB:       ek.B,
			WorldBName:   worldName(worldByKey, ek.B),
			Mass:         mass,
			TrafficClass: trade.Classify(mass, maxMass, th).String(),
		})
	}
	sort.Slice(r.Routes, func(i, j int) bool {
		if r.Routes[i].Mass != r.Routes[j].Mass {
			return r.Routes[i].Mass > r.Routes[j].Mass
		}
		if r.Routes[i].WorldA != r.Routes[j].WorldA {
			return r.Routes[i].WorldA < r.Routes[j].WorldA
		}
		return r.Routes[i].WorldB < r.Routes[j].WorldB
	})

	for key, mass := range agg.OutboundMass {
		r.Worlds = append(r.Worlds, WorldTradeRow{
			World:        key,
			Name:         worldName(worldByKey, key),
			Sector:       worldSector(worldByKey, key),
			OutboundMass: mass,
			PortCount:    agg.PortCount[key],
		})
	}
	sort.Slice(r.Worlds, func(i, j int) bool {
		if r.Worlds[i].OutboundMass != r.Worlds[j].OutboundMass {
			return r.Worlds[i].OutboundMass > r.Worlds[j].OutboundMass
		}
		return r.Worlds[i].World < r.Worlds[j].World
	})

	for _, p := range agg.Pairs {
		if p.BTN < minRouteBTN {
			continue
		}
		r.Pairs = append(r.Pairs, PairRow{
			WorldA:     p.U,
			WorldAName: worldName(worldByKey, p.U),
			WorldB:     p.V,
			WorldBName: worldName(worldByKey, p.V),
			BTN:        p.BTN,
			Mass:       p.Mass,
			Hops:       p.Hops,
		})
	}
	sort.Slice(r.Pairs, func(i, j int) bool {
		if r.Pairs[i].BTN != r.Pairs[j].BTN {
			return r.Pairs[i].BTN > r.Pairs[j].BTN
		}
		if r.Pairs[i].WorldA != r.Pairs[j].WorldA {
			return r.Pairs[i].WorldA < r.Pairs[j].WorldA
		}
		return r.Pairs[i].WorldB < r.Pairs[j].WorldB
	})

	return r
}

// TopRoutes returns at most n of the highest-mass routes.
func (r *Report) TopRoutes(n int) []RouteRow {
	if n <= 0 || n > len(r.Routes) {
		n = len(r.Routes)
	}
	return r.Routes[:n]
}
