package report

import (
	"os"
	"testing"

	"github.com/sectorforge/tradecore/internal/config"
	"github.com/sectorforge/tradecore/internal/trade"
	"github.com/sectorforge/tradecore/internal/worlddata"
)

func worldFixture(key, name, sector string) *worlddata.World {
	return &worlddata.World{Name: name, SectorName: sector}
}

func TestBuildSortsRoutesByMassDescending(t *testing.T) {
	agg := &trade.Aggregate{
		EdgeMass: map[trade.EdgeKey]float64{
			{A: "1,1", B: "2,2"}: 10,
			{A: "3,3", B: "4,4"}: 50,
		},
		OutboundMass: map[string]float64{},
		PortCount:    map[string]int{},
	}
	worldByKey := map[string]*worlddata.World{
		"1,1": worldFixture("1,1", "Alpha", "S1"),
		"2,2": worldFixture("2,2", "Beta", "S1"),
		"3,3": worldFixture("3,3", "Gamma", "S1"),
		"4,4": worldFixture("4,4", "Delta", "S1"),
	}

	r := Build(agg, worldByKey, trade.DefaultTierThresholds(), 0)
	if len(r.Routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(r.Routes))
	}
	if r.Routes[0].Mass != 50 {
		t.Errorf("expected highest-mass route first, got mass %v", r.Routes[0].Mass)
	}
}

func TestBuildFiltersPairsByMinRouteBTN(t *testing.T) {
	agg := &trade.Aggregate{
		EdgeMass:     map[trade.EdgeKey]float64{},
		OutboundMass: map[string]float64{},
		PortCount:    map[string]int{},
		Pairs: []trade.PairResult{
			{U: "1,1", V: "2,2", BTN: 5, Mass: 4, Hops: 1},
			{U: "3,3", V: "4,4", BTN: 9, Mass: 16, Hops: 2},
		},
	}

	r := Build(agg, map[string]*worlddata.World{}, trade.DefaultTierThresholds(), 8)
	if len(r.Pairs) != 1 {
		t.Fatalf("expected 1 pair above threshold, got %d", len(r.Pairs))
	}
	if r.Pairs[0].BTN != 9 {
		t.Errorf("expected BTN 9 pair retained, got %d", r.Pairs[0].BTN)
	}
}

func TestTopRoutesLimit(t *testing.T) {
	r := &Report{Routes: []RouteRow{{Mass: 3}, {Mass: 2}, {Mass: 1}}}
	top := r.TopRoutes(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(top))
	}
}

func TestCSVWriterWritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{OutputDir: dir, OutputFormat: config.FormatCSV}
	w, err := NewWriter(cfg)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	r := &Report{
		Routes: []RouteRow{{WorldA: "1,1", WorldB: "2,2", Mass: 10, TrafficClass: "Feeder"}},
		Worlds: []WorldTradeRow{{World: "1,1", Name: "Alpha", OutboundMass: 10, PortCount: 1}},
		Pairs:  []PairRow{{WorldA: "1,1", WorldB: "2,2", BTN: 8, Mass: 10, Hops: 1}},
	}
	if err := w.WriteAll(r); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	for _, f := range []string{"routes.csv", "world_trade.csv", "route_pairs.csv"} {
		if _, err := os.Stat(dir + "/" + f); err != nil {
			t.Errorf("expected file %s to exist: %v", f, err)
		}
	}
}

func TestJSONWriterWritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{OutputDir: dir, OutputFormat: config.FormatJSON}
	w, err := NewWriter(cfg)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	r := &Report{}
	if err := w.WriteAll(r); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	for _, f := range []string{"routes.json", "world_trade.json", "route_pairs.json"} {
		if _, err := os.Stat(dir + "/" + f); err != nil {
			t.Errorf("expected file %s to exist: %v", f, err)
		}
	}
}
