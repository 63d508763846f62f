package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sectorforge/tradecore/internal/config"
	"github.com/sectorforge/tradecore/internal/tradelog"
)

// CSVWriter writes report tables to CSV files.
type CSVWriter struct {
	outputDir string
	verbose   bool
}

// NewCSVWriter creates a CSVWriter from cfg.
func NewCSVWriter(cfg *config.Config) *CSVWriter {
	return &CSVWriter{outputDir: cfg.OutputDir, verbose: cfg.Verbose}
}

// WriteAll writes routes, world trade, and pair tables to CSV files.
func (w *CSVWriter) WriteAll(r *Report) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	routeRows := make([][]string, len(r.Routes))
	for i, row := range r.Routes {
		routeRows[i] = []string{row.WorldA, row.WorldAName, row.WorldB, row.WorldBName,
			strconv.FormatFloat(row.Mass, 'f', 4, 64), row.TrafficClass}
	}
	if err := w.writeCSV(routesBaseName+".csv",
		[]string{"world_a", "world_a_name", "world_b", "world_b_name", "mass", "traffic_class"}, routeRows); err != nil {
		return err
	}

	worldRows := make([][]string, len(r.Worlds))
	for i, row := range r.Worlds {
		worldRows[i] = []string{row.World, row.Name, row.Sector,
			strconv.FormatFloat(row.OutboundMass, 'f', 4, 64), strconv.Itoa(row.PortCount)}
	}
	if err := w.writeCSV(worldsBaseName+".csv",
		[]string{"world", "name", "sector", "outbound_mass", "port_count"}, worldRows); err != nil {
		return err
	}

	pairRows := make([][]string, len(r.Pairs))
	for i, row := range r.Pairs {
		pairRows[i] = []string{row.WorldA, row.WorldAName, row.WorldB, row.WorldBName,
			strconv.Itoa(row.BTN), strconv.FormatFloat(row.Mass, 'f', 4, 64), strconv.Itoa(row.Hops)}
	}
	return w.writeCSV(pairsBaseName+".csv",
		[]string{"world_a", "world_a_name", "world_b", "world_b_name", "btn", "mass", "hops"}, pairRows)
}

func (w *CSVWriter) writeCSV(filename string, headers []string, rows [][]string) (err error) {
	path := filepath.Join(w.outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file %s: %w", path, closeErr)
		}
	}()

	csvWriter := csv.NewWriter(file)
	defer func() {
		csvWriter.Flush()
		if flushErr := csvWriter.Error(); flushErr != nil && err == nil {
			err = fmt.Errorf("failed to flush CSV writer for %s: %w", path, flushErr)
		}
	}()

	if err := csvWriter.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	if w.verbose {
		tradelog.Debug("wrote report file", tradelog.F("file", filename), tradelog.F("rows", len(rows)))
	}
	return nil
}
