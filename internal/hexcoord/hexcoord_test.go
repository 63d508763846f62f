package hexcoord

import "testing"

func TestToAbsolute(t *testing.T) {
	tests := []struct {
		name string
		off  Offset
		hex  Hex
		want Absolute
	}{
		{"origin sector", Offset{0, 0}, Hex{1, 1}, Absolute{1, 1}},
		{"sector A corner", Offset{0, 0}, Hex{32, 40}, Absolute{32, 40}},
		{"sector B shifted one sector east", Offset{1, 0}, Hex{1, 20}, Absolute{33, 20}},
		{"negative offset", Offset{-1, -1}, Hex{32, 40}, Absolute{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToAbsolute(tt.off, tt.hex)
			if got != tt.want {
				t.Errorf("ToAbsolute(%+v, %+v) = %+v, want %+v", tt.off, tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexDistanceSymmetricAndZero(t *testing.T) {
	a := Absolute{32, 20}
	b := Absolute{33, 20}

	if HexDistance(a, b) != HexDistance(b, a) {
		t.Fatalf("HexDistance not symmetric: %d vs %d", HexDistance(a, b), HexDistance(b, a))
	}
	if HexDistance(a, a) != 0 {
		t.Fatalf("HexDistance(a, a) = %d, want 0", HexDistance(a, a))
	}
}

func TestHexDistanceAdjacent(t *testing.T) {
	// Fixture from the end-to-end scenario: two sectors "A" (offset 0,0) and
	// "B" (offset 1,0); world A at (32, 20), world B at (33, 20).
	a := ToAbsolute(Offset{0, 0}, Hex{32, 20})
	b := ToAbsolute(Offset{1, 0}, Hex{1, 20})

	if a != (Absolute{32, 20}) || b != (Absolute{33, 20}) {
		t.Fatalf("unexpected absolute coords: a=%+v b=%+v", a, b)
	}
	if got := HexDistance(a, b); got != 1 {
		t.Errorf("HexDistance(%+v, %+v) = %d, want 1", a, b, got)
	}
}

func TestHexDistanceTable(t *testing.T) {
	// Known-good distances on a flat-top odd-q grid, same row or same column.
	tests := []struct {
		a, b Absolute
		want int
	}{
		{Absolute{0, 0}, Absolute{0, 0}, 0},
		{Absolute{0, 0}, Absolute{1, 0}, 1},
		{Absolute{0, 0}, Absolute{2, 0}, 2},
		{Absolute{0, 0}, Absolute{0, 1}, 1},
		{Absolute{0, 0}, Absolute{0, 2}, 2},
	}
	for _, tt := range tests {
		if got := HexDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("HexDistance(%+v, %+v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestHexValid(t *testing.T) {
	if !(Hex{1, 1}).Valid() {
		t.Error("Hex{1,1} should be valid")
	}
	if !(Hex{32, 40}).Valid() {
		t.Error("Hex{32,40} should be valid")
	}
	if (Hex{0, 1}).Valid() {
		t.Error("Hex{0,1} should be invalid")
	}
	if (Hex{33, 1}).Valid() {
		t.Error("Hex{33,1} should be invalid")
	}
	if (Hex{1, 41}).Valid() {
		t.Error("Hex{1,41} should be invalid")
	}
}

func TestAbsoluteLess(t *testing.T) {
	a := Absolute{1, 5}
	b := Absolute{2, 0}
	c := Absolute{1, 6}

	if !a.Less(b) {
		t.Error("want a < b by X")
	}
	if !a.Less(c) {
		t.Error("want a < c by Y when X equal")
	}
	if b.Less(a) {
		t.Error("b should not be less than a")
	}
}
