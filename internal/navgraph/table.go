package navgraph

import "github.com/sectorforge/tradecore/internal/hexcoord"

// Table is a dense, row-major shortest-path table over a Graph: Dist[s][v]
// and Pred[s][v] for every source s and vertex v. Each row is written by
// exactly one worker, so no synchronization is needed beyond the final
// join (spec.md §4.5, §5).
type Table struct {
	Graph *Graph
	Dist  [][]float64
	Pred  [][]int
}

// AllPairsShortestPaths computes the dense shortest-path table for every
// vertex of g, distributing source vertices across a bounded worker pool.
// Each worker writes only to the rows it owns, matching the job-channel +
// per-worker-done-signal shape used across this codebase's other bounded
// pools (internal/classify.ClassifyAll).
func AllPairsShortestPaths(g *Graph, workers int) *Table {
	n := len(g.Vertices)
	t := &Table{
		Graph: g,
		Dist:  make([][]float64, n),
		Pred:  make([][]int, n),
	}
	for i := 0; i < n; i++ {
		t.Dist[i] = make([]float64, n)
		t.Pred[i] = make([]int, n)
	}

	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n == 0 {
		return t
	}
	if workers <= 1 {
		for s := 0; s < n; s++ {
			ShortestPathsFrom(g, s, t.Dist[s], t.Pred[s])
		}
		return t
	}

	jobs := make(chan int)
	done := make(chan struct{})

	for i := 0; i < workers; i++ {
		go func() {
			for s := range jobs {
				ShortestPathsFrom(g, s, t.Dist[s], t.Pred[s])
			}
			done <- struct{}{}
		}()
	}

	go func() {
		for s := 0; s < n; s++ {
			jobs <- s
		}
		close(jobs)
	}()

	for i := 0; i < workers; i++ {
		<-done
	}

	return t
}

// PathVertices walks Pred[source] from dest back to source, returning the
// vertex indices in source-to-dest order. Returns nil if dest is
// unreachable from source.
func (t *Table) PathVertices(source, dest int) []int {
	if Unreachable(t.Dist[source][dest]) && source != dest {
		return nil
	}
	var rev []int
	v := dest
	for v != source {
		rev = append(rev, v)
		p := t.Pred[source][v]
		if p == NoPath {
			return nil
		}
		v = p
	}
	rev = append(rev, source)

	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// PathEdges returns the consecutive vertex-index pairs (u, v) forming the
// shortest path from source to dest, in traversal order. Returns nil if
// dest is unreachable.
func (t *Table) PathEdges(source, dest int) [][2]int {
	verts := t.PathVertices(source, dest)
	if len(verts) < 2 {
		return nil
	}
	edges := make([][2]int, 0, len(verts)-1)
	for i := 0; i+1 < len(verts); i++ {
		edges = append(edges, [2]int{verts[i], verts[i+1]})
	}
	return edges
}

// PathParsecs returns the shortest path's length in parsecs: the sum of hex
// distances across the hops it traverses, as opposed to the hop count
// itself (a single hop may itself span up to maxJump parsecs). Used as the
// BTN distance penalty's input, per spec.md §4.6. Returns 0 if source ==
// dest, and -1 if dest is unreachable.
func (t *Table) PathParsecs(source, dest int) int {
	edges := t.PathEdges(source, dest)
	if edges == nil {
		if source == dest {
			return 0
		}
		return -1
	}
	total := 0
	for _, e := range edges {
		total += hexcoord.HexDistance(t.Graph.Vertices[e[0]].Abs, t.Graph.Vertices[e[1]].Abs)
	}
	return total
}
