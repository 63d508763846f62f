package navgraph

import "container/heap"

// NoPath marks an unreachable predecessor entry.
const NoPath = -1

// pqItem is one candidate in the open set. Ordering is (dist, zonePenalty,
// key) ascending, which is the deterministic tie-break spec.md §4.5 and §9
// require: equal-distance candidates prefer the lower combined zone penalty,
// then lexicographic vertex key, independent of insertion or scheduling
// order.
type pqItem struct {
	vertex      int
	dist        float64
	zonePenalty float64
	key         string
	index       int
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.zonePenalty != b.zonePenalty {
		return a.zonePenalty < b.zonePenalty
	}
	return a.key < b.key
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// ShortestPathsFrom runs single-source Dijkstra from source over g, filling
// dist and pred. It first resets every dist entry to the 1e18 "never
// reached" sentinel (see Unreachable) and every pred entry to NoPath.
func ShortestPathsFrom(g *Graph, source int, dist []float64, pred []int) {
	const inf = 1e18
	for i := range dist {
		dist[i] = inf
		pred[i] = NoPath
	}
	dist[source] = 0

	pq := make(priorityQueue, 0, len(g.Vertices))
	heap.Push(&pq, &pqItem{vertex: source, dist: 0, zonePenalty: 0, key: g.Vertices[source].Key()})

	visited := make([]bool, len(g.Vertices))

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pqItem)
		u := item.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.adj[u] {
			if visited[e.To] {
				continue
			}
			nd := dist[u] + e.Weight
			if nd < dist[e.To] {
				dist[e.To] = nd
				pred[e.To] = u
				heap.Push(&pq, &pqItem{
					vertex:      e.To,
					dist:        nd,
					zonePenalty: e.ZonePenalty,
					key:         g.Vertices[e.To].Key(),
				})
			}
		}
	}
}

// Unreachable reports whether d is the sentinel "never reached" distance
// ShortestPathsFrom leaves in place for vertices with no path from source.
func Unreachable(d float64) bool {
	return d >= 1e18
}
