package report

import (
	"fmt"

	"github.com/sectorforge/tradecore/internal/config"
)

// Writer writes a Report's tables to files in a specific format.
type Writer interface {
	WriteAll(r *Report) error
}

// NewWriter creates a Writer based on the configured output format.
func NewWriter(cfg *config.Config) (Writer, error) {
	switch cfg.OutputFormat {
	case config.FormatCSV:
		return NewCSVWriter(cfg), nil
	case config.FormatJSON:
		return NewJSONWriter(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.OutputFormat)
	}
}

// Output file names shared by both writers (with their own extensions).
const (
	routesBaseName = "routes"
	worldsBaseName = "world_trade"
	pairsBaseName  = "route_pairs"
)
