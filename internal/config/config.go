// Package config provides configuration management for the route engine.
package config

import "runtime"

// OutputFormat specifies the report output file format.
type OutputFormat string

const (
	// FormatCSV outputs report tables in CSV format.
	FormatCSV OutputFormat = "csv"
	// FormatJSON outputs report tables in JSON format.
	FormatJSON OutputFormat = "json"
)

// Defaults match spec.md §6's configuration table and §9's worked example
// (min_btn 7, min_route_btn 8).
const (
	DefaultJump        = 2
	DefaultMinJump     = 1
	DefaultMaxJump     = 6
	DefaultMinBTN      = 7
	DefaultMinRouteBTN = 8
)

// Config holds all configuration options for a route-computation run.
type Config struct {
	// Sectors is the list of selected sector names to compute routes for.
	Sectors []string

	// SectorCacheDir is the local directory holding cached sector documents
	// (survey tables and metadata), populated by the external fetcher.
	SectorCacheDir string

	// Jump is the maximum jump distance in parsecs, 1..6.
	Jump int

	// MinBTN is the minimum Bilateral Trade Number for a pair to
	// contribute to edge-mass aggregation.
	MinBTN int

	// MinRouteBTN is the minimum Bilateral Trade Number for a pair to be
	// listed in route reports. Must be >= MinBTN.
	MinRouteBTN int

	// OutputDir is the directory where report files will be written.
	OutputDir string

	// OutputFormat specifies the report file format (csv or json).
	OutputFormat OutputFormat

	// Workers caps the worker-pool concurrency for the classify, graph,
	// and aggregation phases. 0 means "use runtime.GOMAXPROCS(0)".
	Workers int

	// Verbose enables debug-level logging.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Jump:        DefaultJump,
		MinBTN:      DefaultMinBTN,
		MinRouteBTN: DefaultMinRouteBTN,
		OutputDir:   "./output",
		OutputFormat: FormatCSV,
	}
}

// ResolvedWorkers returns Workers if positive, else runtime.GOMAXPROCS(0).
func (c *Config) ResolvedWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Validate checks that the configuration is self-consistent, per spec.md
// §7's ConfigError kind: contradictory options are fatal and reported
// before any work begins.
func (c *Config) Validate() error {
	if len(c.Sectors) == 0 {
		return &ConfigError{Reason: "at least one sector must be selected"}
	}
	if c.SectorCacheDir == "" {
		return &ConfigError{Reason: "sector cache directory must be specified"}
	}
	if c.Jump < DefaultMinJump || c.Jump > DefaultMaxJump {
		return &ConfigError{Reason: "jump must be in range 1..6"}
	}
	if c.MinRouteBTN < c.MinBTN {
		return &ConfigError{Reason: "min_route_btn must be >= min_btn"}
	}
	if c.OutputDir == "" {
		return &ConfigError{Reason: "output directory must be specified"}
	}
	switch c.OutputFormat {
	case FormatCSV, FormatJSON:
	default:
		return &ConfigError{Reason: "output format must be csv or json"}
	}
	return nil
}
