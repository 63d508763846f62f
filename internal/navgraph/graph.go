// Package navgraph builds the jump-limited navigation graph over a world set
// and computes all-pairs shortest paths by Dijkstra from every vertex,
// distributed across a bounded worker pool with one row per worker.
package navgraph

import (
	"sort"

	"github.com/sectorforge/tradecore/internal/hexcoord"
	"github.com/sectorforge/tradecore/internal/neighbor"
	"github.com/sectorforge/tradecore/internal/worlddata"
)

// Edge is one undirected adjacency, stored twice (once per direction) in the
// Graph's adjacency lists.
type Edge struct {
	To          int
	Weight      float64
	ZonePenalty float64
}

// Graph is a frozen adjacency-list view over a world set. Vertex indices are
// stable for the lifetime of the Graph and assigned in ascending absolute-
// coordinate order, which is what makes tie-broken Dijkstra runs
// reproducible across process runs.
type Graph struct {
	Vertices []*worlddata.World
	index    map[string]int
	adj      [][]Edge
}

// VertexIndex returns the stable index assigned to w's key, or -1 if w is
// not a vertex of this graph.
func (g *Graph) VertexIndex(key string) int {
	if i, ok := g.index[key]; ok {
		return i
	}
	return -1
}

// Neighbors returns the adjacency list for vertex i.
func (g *Graph) Neighbors(i int) []Edge {
	return g.adj[i]
}

// Build constructs the navigation graph: one vertex per world in worlds
// (the selected sectors plus the halo of transit-only worlds within maxJump,
// already merged by the caller per spec.md §9's cross-sector boundary note),
// and one undirected edge per pair within maxJump hexes of each other,
// excluding any edge touching a Red-zoned world (spec.md §4.5: Red worlds
// are effectively disconnected for aggregation, never an interior vertex of
// a returned path).
func Build(worlds []*worlddata.World, idx *neighbor.Index, maxJump int, cfg WeightConfig) *Graph {
	sorted := make([]*worlddata.World, len(worlds))
	copy(sorted, worlds)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Abs.Less(sorted[j].Abs)
	})

	g := &Graph{
		Vertices: sorted,
		index:    make(map[string]int, len(sorted)),
		adj:      make([][]Edge, len(sorted)),
	}
	for i, w := range sorted {
		g.index[w.Key()] = i
	}

	for i, w := range sorted {
		if w.Zone == worlddata.ZoneRed {
			continue
		}
		for _, nk := range idx.Within(w, maxJump) {
			j, ok := g.index[nk]
			if !ok {
				continue
			}
			other := sorted[j]
			if other.Zone == worlddata.ZoneRed {
				continue
			}
			// Within returns both (w, other) and (other, w); only add the
			// edge once, from the lower index, to avoid duplicate adjacency
			// entries, then mirror it onto the higher index.
			if j <= i {
				continue
			}
			dist := hexcoord.HexDistance(w.Abs, other.Abs)
			cost, zp := weight(w, other, dist, cfg)
			g.adj[i] = append(g.adj[i], Edge{To: j, Weight: cost, ZonePenalty: zp})
			g.adj[j] = append(g.adj[j], Edge{To: i, Weight: cost, ZonePenalty: zp})
		}
	}

	for i := range g.adj {
		sort.Slice(g.adj[i], func(a, b int) bool {
			return g.Vertices[g.adj[i][a].To].Key() < g.Vertices[g.adj[i][b].To].Key()
		})
	}

	return g
}
