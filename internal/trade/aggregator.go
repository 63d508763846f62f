package trade

import (
	"sort"

	"github.com/sectorforge/tradecore/internal/navgraph"
)

// EdgeKey identifies an unordered graph edge by its endpoints' stable world
// keys, lower key first, matching the lexicographic tie-break discipline
// used throughout this codebase.
type EdgeKey struct {
	A, B string
}

func edgeKey(a, b string) EdgeKey {
	if a <= b {
		return EdgeKey{A: a, B: b}
	}
	return EdgeKey{A: b, B: a}
}

// PairResult records one eligible pair's contribution, kept around for
// report emission (top-routes / pair listings) in addition to the edge and
// endpoint accumulators. Edges lists the traversed graph edges' stable keys
// so reduce can credit them in a single canonical-order pass rather than
// inside each worker's shard.
type PairResult struct {
	U, V  string
	BTN   int
	Mass  float64
	Hops  int
	Edges []EdgeKey
}

// Aggregate holds the accumulated, reduced results of one aggregation run:
// per-edge trade mass, per-world outbound mass and port count, and the list
// of eligible pairs.
type Aggregate struct {
	EdgeMass     map[EdgeKey]float64
	OutboundMass map[string]float64
	PortCount    map[string]int
	Pairs        []PairResult
}

// shard is one worker's private accumulator. Workers never read or write
// another shard; each shard only collects the pairs it discovers, with no
// partial sums of its own. reduce gathers every shard's pairs into one
// slice, sorts it by (U, V), and performs a single accumulation pass over
// that canonical order, so floating-point summation order never depends on
// how work was partitioned across workers (spec.md §4.6, §8).
type shard struct {
	pairs []PairResult
}

func newShard() *shard {
	return &shard{}
}

// Run computes BTN for every eligible world pair (u, v) with u's key less
// than v's key, walks each pair's shortest path, and accumulates BTN-derived
// mass onto every traversed edge and onto each endpoint's outbound total.
// Work is partitioned by source-vertex row across a bounded worker pool;
// each worker owns a private shard, joined by a single deterministic
// reduction (spec.md §5, §4.6).
//
// endpointEligible, if non-nil, restricts which worlds may be the u/v
// endpoints of a reported pair (spec.md §9: unselected-sector halo worlds
// participate only as transit stops). Edge mass is still accumulated onto
// every traversed edge regardless, including ones touching a halo world
// partway along a path; only pair/outbound-mass/port-count credit is
// restricted. A nil filter admits every world, as every existing caller
// that has no selected/halo distinction expects.
func Run(table *navgraph.Table, minBTN int, workers int, endpointEligible func(key string) bool) *Aggregate {
	g := table.Graph
	n := len(g.Vertices)

	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n == 0 {
		return &Aggregate{
			EdgeMass:     map[EdgeKey]float64{},
			OutboundMass: map[string]float64{},
			PortCount:    map[string]int{},
		}
	}

	shards := make([]*shard, workers)
	for i := range shards {
		shards[i] = newShard()
	}

	jobs := make(chan int)
	done := make(chan struct{})

	for wi := 0; wi < workers; wi++ {
		sh := shards[wi]
		go func() {
			for i := range jobs {
				processSource(table, i, minBTN, endpointEligible, sh)
			}
			done <- struct{}{}
		}()
	}

	go func() {
		for i := 0; i < n; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	for wi := 0; wi < workers; wi++ {
		<-done
	}

	return reduce(shards)
}

// processSource handles every pair (i, j) with j's world key greater than
// i's, so each unordered pair is visited from exactly one source row.
func processSource(table *navgraph.Table, i int, minBTN int, endpointEligible func(key string) bool, sh *shard) {
	g := table.Graph
	u := g.Vertices[i]
	uKey := u.Key()
	if endpointEligible != nil && !endpointEligible(uKey) {
		return
	}

	for j, v := range g.Vertices {
		if j == i {
			continue
		}
		vKey := v.Key()
		if vKey <= uKey {
			continue
		}
		if endpointEligible != nil && !endpointEligible(vKey) {
			continue
		}
		if navgraph.Unreachable(table.Dist[i][j]) {
			continue
		}

		edges := table.PathEdges(i, j)
		parsecs := table.PathParsecs(i, j)
		btn, ok := EligiblePair(u, v, parsecs, minBTN)
		if !ok {
			continue
		}

		mass := Mass(btn)
		edgeKeys := make([]EdgeKey, len(edges))
		for k, e := range edges {
			a, b := g.Vertices[e[0]].Key(), g.Vertices[e[1]].Key()
			edgeKeys[k] = edgeKey(a, b)
		}
		sh.pairs = append(sh.pairs, PairResult{U: uKey, V: vKey, BTN: btn, Mass: mass, Hops: len(edges), Edges: edgeKeys})
	}
}

// reduce gathers every shard's pairs into a single slice, sorts it by
// (U, V), and performs one canonical-order accumulation pass over that
// sorted slice to build EdgeMass, OutboundMass, and PortCount. Summing
// per-shard partial totals (even visiting shards in a fixed order) is not
// enough: which source-vertex rows land in which shard depends on
// nondeterministic job-channel scheduling, so each shard's partial sum
// would itself be order-dependent. A single pass over one global,
// input-derived order is the only way to make floating-point summation
// independent of worker count, per spec.md §4.6 and §8.
func reduce(shards []*shard) *Aggregate {
	var pairs []PairResult
	for _, sh := range shards {
		pairs = append(pairs, sh.pairs...)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].U != pairs[j].U {
			return pairs[i].U < pairs[j].U
		}
		return pairs[i].V < pairs[j].V
	})

	agg := &Aggregate{
		EdgeMass:     make(map[EdgeKey]float64),
		OutboundMass: make(map[string]float64),
		PortCount:    make(map[string]int),
		Pairs:        pairs,
	}

	for _, p := range pairs {
		for _, ek := range p.Edges {
			agg.EdgeMass[ek] += p.Mass
		}
		agg.OutboundMass[p.U] += p.Mass
		agg.OutboundMass[p.V] += p.Mass
		agg.PortCount[p.U]++
		agg.PortCount[p.V]++
	}

	return agg
}
