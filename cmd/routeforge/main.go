// Package main provides the CLI entry point for the trade-route engine.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sectorforge/tradecore/internal/classify"
	"github.com/sectorforge/tradecore/internal/config"
	"github.com/sectorforge/tradecore/internal/hexcoord"
	"github.com/sectorforge/tradecore/internal/navgraph"
	"github.com/sectorforge/tradecore/internal/neighbor"
	"github.com/sectorforge/tradecore/internal/report"
	"github.com/sectorforge/tradecore/internal/sectorcache"
	"github.com/sectorforge/tradecore/internal/tradelog"
	"github.com/sectorforge/tradecore/internal/trade"
	"github.com/sectorforge/tradecore/internal/worlddata"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeLike is implemented by every typed error kind spec.md §7
// defines, so the CLI can exit with the kind-specific code.
type exitCodeLike interface {
	ExitCode() int
}

func exitCodeFor(err error) int {
	var ec exitCodeLike
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

var cfg = config.NewConfig()

var rootCmd = &cobra.Command{
	Use:   "routeforge",
	Short: "Compute Traveller-style trade routes across selected sectors",
	Long: `routeforge loads cached sector survey data, classifies every world's
trade codes and importance, builds the jump-distance navigation graph
(including the halo of unselected-sector worlds needed as transit stops),
computes all-pairs shortest paths, derives Bilateral Trade Numbers and
route traffic mass, and writes route/world/pair report tables.`,
	Example: `  # Compute routes for two sectors at jump-2, writing CSV reports
  routeforge --cache-dir ./cache --sectors "Spinward Marches,Deneb" --output ./output

  # Use JSON output and a higher minimum BTN for the route listing
  routeforge --cache-dir ./cache --sectors "Spinward Marches" --format json --min-route-btn 10`,
	RunE: runRoute,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("routeforge version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringSliceVarP(&cfg.Sectors, "sectors", "s", nil, "Selected sector names (comma-separated)")
	rootCmd.Flags().StringVarP(&cfg.SectorCacheDir, "cache-dir", "c", "", "Directory holding cached sector documents")
	rootCmd.Flags().IntVarP(&cfg.Jump, "jump", "j", config.DefaultJump, "Maximum jump distance in parsecs (1..6)")
	rootCmd.Flags().IntVar(&cfg.MinBTN, "min-btn", config.DefaultMinBTN, "Minimum BTN for a pair to contribute trade mass")
	rootCmd.Flags().IntVar(&cfg.MinRouteBTN, "min-route-btn", config.DefaultMinRouteBTN, "Minimum BTN for a pair to appear in the route listing")
	rootCmd.Flags().StringVarP(&cfg.OutputDir, "output", "o", "./output", "Output directory for report files")
	rootCmd.Flags().IntVarP(&cfg.Workers, "workers", "w", 0, "Worker pool size (0 = runtime.GOMAXPROCS)")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug-level logging")

	var formatStr string
	rootCmd.Flags().StringVarP(&formatStr, "format", "f", "csv", "Report output format: csv or json")
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		switch formatStr {
		case "csv":
			cfg.OutputFormat = config.FormatCSV
		case "json":
			cfg.OutputFormat = config.FormatJSON
		default:
			return fmt.Errorf("invalid format %q: must be csv or json", formatStr)
		}
		return nil
	}
}

func runRoute(cmd *cobra.Command, args []string) error {
	if cfg.Verbose {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.DebugLevel)
		tradelog.SetLogger(tradelog.NewZerologAdapter(zl))
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Println("\nInterrupt received, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return run(ctx, cfg)
}

// run executes the full pipeline: load -> classify -> index -> graph ->
// shortest paths -> aggregate -> report. It is a separate function from
// runRoute so tests could drive it directly with a synthetic config
// (the CLI wiring itself is not independently tested; cobra flag parsing
// is exercised manually per spec.md's CLI surface).
func run(ctx context.Context, cfg *config.Config) error {
	loader := sectorcache.New(cfg.SectorCacheDir)

	selectedSectors, err := loader.LoadAll(cfg.Sectors)
	if err != nil {
		return err
	}
	tradelog.Info("loaded selected sectors", tradelog.F("count", len(selectedSectors)))

	if err := ctx.Err(); err != nil {
		return err
	}

	selectedNames := make(map[string]bool, len(cfg.Sectors))
	for _, name := range cfg.Sectors {
		selectedNames[name] = true
	}

	worlds, selectedKeys, err := assembleWorldSet(loader, selectedSectors, selectedNames, cfg.Jump)
	if err != nil {
		return err
	}
	tradelog.Info("assembled world set", tradelog.F("worlds", len(worlds)), tradelog.F("selected", len(selectedKeys)))

	workers := cfg.ResolvedWorkers()

	classify.ClassifyAll(worlds, classify.RemarksCapitals{}, workers)
	tradelog.Info("classification complete")

	if err := ctx.Err(); err != nil {
		return err
	}

	idx := neighbor.Build(worlds, []int{cfg.Jump})
	g := navgraph.Build(worlds, idx, cfg.Jump, navgraph.DefaultWeightConfig())
	tradelog.Info("navigation graph built", tradelog.F("vertices", len(g.Vertices)))

	if err := ctx.Err(); err != nil {
		return err
	}

	table := navgraph.AllPairsShortestPaths(g, workers)
	tradelog.Info("shortest-path barrier joined")

	if err := ctx.Err(); err != nil {
		return err
	}

	endpointEligible := func(key string) bool { return selectedKeys[key] }
	agg := trade.Run(table, cfg.MinBTN, workers, endpointEligible)
	tradelog.Info("BTN pairs aggregated", tradelog.F("pairs", len(agg.Pairs)))

	worldByKey := make(map[string]*worlddata.World, len(worlds))
	for _, w := range worlds {
		worldByKey[w.Key()] = w
	}

	rpt := report.Build(agg, worldByKey, trade.DefaultTierThresholds(), cfg.MinRouteBTN)

	writer, err := report.NewWriter(cfg)
	if err != nil {
		return err
	}
	if err := writer.WriteAll(rpt); err != nil {
		return err
	}
	tradelog.Info("reports written", tradelog.F("dir", cfg.OutputDir))

	return nil
}

// assembleWorldSet returns the full vertex set for the navigation graph:
// every world in a selected sector, plus the halo of worlds in any other
// cached sector whose hex distance to some selected world is within jump
// parsecs (spec.md §9's cross-sector boundary note). It also returns the
// set of world keys belonging to a selected sector, used to restrict BTN
// pair endpoints to selected worlds (halo worlds are transit stops only).
func assembleWorldSet(loader *sectorcache.Loader, selectedSectors []*worlddata.Sector, selectedNames map[string]bool, jump int) ([]*worlddata.World, map[string]bool, error) {
	var worlds []*worlddata.World
	selectedKeys := make(map[string]bool)

	for _, s := range selectedSectors {
		for _, w := range s.WorldList {
			worlds = append(worlds, w)
			selectedKeys[w.Key()] = true
		}
	}

	allNames, err := loader.ListAvailable()
	if err != nil {
		return nil, nil, err
	}

	var haloCandidates []*worlddata.Sector
	for _, name := range allNames {
		if selectedNames[name] {
			continue
		}
		s, err := loader.Load(name)
		if err != nil {
			continue // sector listed but not resolvable is not fatal to halo assembly
		}
		haloCandidates = append(haloCandidates, s)
	}

	// Measure distance against the selected-sector worlds only: a halo
	// world within jump of another halo world, but not of any selected
	// world, is not a transit stop any selected-sector route actually
	// needs, and including it would let the halo grow transitively.
	selectedOnly := append([]*worlddata.World(nil), worlds...)

	for _, s := range haloCandidates {
		for _, w := range s.WorldList {
			if withinJumpOfAny(w, selectedOnly, jump) {
				worlds = append(worlds, w)
			}
		}
	}

	return worlds, selectedKeys, nil
}

func withinJumpOfAny(w *worlddata.World, selected []*worlddata.World, jump int) bool {
	for _, s := range selected {
		if hexcoord.HexDistance(s.Abs, w.Abs) <= jump {
			return true
		}
	}
	return false
}
