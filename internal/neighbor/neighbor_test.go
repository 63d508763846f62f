package neighbor

import (
	"testing"

	"github.com/sectorforge/tradecore/internal/hexcoord"
	"github.com/sectorforge/tradecore/internal/worlddata"
)

func worldAt(key string, x, y int) *worlddata.World {
	return &worlddata.World{Name: key, Abs: hexcoord.Absolute{X: x, Y: y}}
}

func TestBuildWithinJumpOne(t *testing.T) {
	a := worldAt("A", 0, 0)
	b := worldAt("B", 1, 0)
	c := worldAt("C", 10, 10)

	idx := Build([]*worlddata.World{a, b, c}, []int{1, 2})

	got := idx.Within(a, 1)
	if len(got) != 1 || got[0] != b.Key() {
		t.Fatalf("Within(a, 1) = %v, want [%s]", got, b.Key())
	}

	got2 := idx.Within(c, 1)
	if len(got2) != 0 {
		t.Fatalf("Within(c, 1) = %v, want empty", got2)
	}
}

func TestBuildSortedDeterministic(t *testing.T) {
	worlds := []*worlddata.World{
		worldAt("Z", 0, 0),
		worldAt("Y", 1, 0),
		worldAt("X", 0, 1),
	}
	idx := Build(worlds, []int{2})
	got1 := idx.Within(worlds[0], 2)
	got2 := idx.Within(worlds[0], 2)
	if len(got1) != 2 {
		t.Fatalf("Within = %v, want 2 neighbors", got1)
	}
	for i := range got1 {
		if got1[i] != got2[i] {
			t.Fatalf("Within not deterministic: %v vs %v", got1, got2)
		}
	}
	if got1[0] > got1[1] {
		t.Fatalf("Within not sorted: %v", got1)
	}
}

func TestBuildUnknownJumpLevel(t *testing.T) {
	a := worldAt("A", 0, 0)
	idx := Build([]*worlddata.World{a}, []int{1})
	if got := idx.Within(a, 99); got != nil {
		t.Fatalf("Within at unconfigured jump level = %v, want nil", got)
	}
}

func TestJumpLevels(t *testing.T) {
	idx := Build(nil, []int{1, 3, 5})
	levels := idx.JumpLevels()
	if len(levels) != 3 || levels[0] != 1 || levels[1] != 3 || levels[2] != 5 {
		t.Fatalf("JumpLevels = %v, want [1 3 5]", levels)
	}
}
