// Package neighbor builds, for every world, the sorted set of other worlds
// within each configured jump distance. The index is built once and frozen;
// all reads after construction are lock-free.
package neighbor

import (
	"sort"

	"github.com/sectorforge/tradecore/internal/hexcoord"
	"github.com/sectorforge/tradecore/internal/worlddata"
)

// DefaultJumpLevels are the jump distances the index tracks when Build is
// given no jump levels, per spec.md §4.4. A caller configuring a larger max_jump should pass a longer
// slice to Build.
var DefaultJumpLevels = []int{1, 2, 3, 4}

// Index is a frozen, read-only neighbor index over a fixed set of worlds.
type Index struct {
	jumpLevels []int
	// byWorld[j] maps a world's Key() to the sorted keys of worlds within
	// jump distance j.
	byWorld map[int]map[string][]string
}

// Build buckets worlds by their absolute X coordinate so that, given a query
// world, only buckets within the maximum configured jump distance need to be
// scanned. This keeps construction close to O(N*k) rather than O(N^2) for
// charted spaces where k (worlds within jump range) is small relative to N
// (total worlds). It constructs the neighbor index for worlds at the given
// jump levels.
// The result is frozen: Build never mutates its inputs, and the returned
// Index is safe for concurrent reads from many goroutines.
func Build(worlds []*worlddata.World, jumpLevels []int) *Index {
	if len(jumpLevels) == 0 {
		jumpLevels = DefaultJumpLevels
	}
	maxJump := 0
	for _, j := range jumpLevels {
		if j > maxJump {
			maxJump = j
		}
	}

	buckets := make(map[int][]*worlddata.World)
	for _, w := range worlds {
		buckets[w.Abs.X] = append(buckets[w.Abs.X], w)
	}

	idx := &Index{
		jumpLevels: append([]int(nil), jumpLevels...),
		byWorld:    make(map[int]map[string][]string, len(jumpLevels)),
	}
	for _, j := range jumpLevels {
		idx.byWorld[j] = make(map[string][]string, len(worlds))
	}

	for _, w := range worlds {
		// Every bucket within maxJump of w's X coordinate may contain a
		// neighbor; buckets further away cannot, since hex distance on a
		// flat-top grid is never less than |dx|.
		withinByJump := make(map[int][]string, len(jumpLevels))

		for dx := -maxJump; dx <= maxJump; dx++ {
			for _, other := range buckets[w.Abs.X+dx] {
				if other == w {
					continue
				}
				d := hexcoord.HexDistance(w.Abs, other.Abs)
				if d > maxJump {
					continue
				}
				for _, j := range jumpLevels {
					if d <= j {
						withinByJump[j] = append(withinByJump[j], other.Key())
					}
				}
			}
		}

		for _, j := range jumpLevels {
			keys := withinByJump[j]
			sort.Strings(keys)
			idx.byWorld[j][w.Key()] = keys
		}
	}

	return idx
}

// Within returns the sorted keys of worlds within jump distance j of w.
// Returns nil if j was not among the configured jump levels.
func (idx *Index) Within(w *worlddata.World, j int) []string {
	byKey, ok := idx.byWorld[j]
	if !ok {
		return nil
	}
	return byKey[w.Key()]
}

// JumpLevels returns the jump distances this index was built for.
func (idx *Index) JumpLevels() []int {
	return append([]int(nil), idx.jumpLevels...)
}
