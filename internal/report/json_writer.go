package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sectorforge/tradecore/internal/config"
	"github.com/sectorforge/tradecore/internal/tradelog"
)

// JSONWriter writes report tables to JSON files.
type JSONWriter struct {
	outputDir string
	verbose   bool
}

// NewJSONWriter creates a JSONWriter from cfg.
func NewJSONWriter(cfg *config.Config) *JSONWriter {
	return &JSONWriter{outputDir: cfg.OutputDir, verbose: cfg.Verbose}
}

// WriteAll writes routes, world trade, and pair tables to JSON files.
func (w *JSONWriter) WriteAll(r *Report) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := w.writeJSON(routesBaseName+".json", r.Routes); err != nil {
		return err
	}
	if err := w.writeJSON(worldsBaseName+".json", r.Worlds); err != nil {
		return err
	}
	return w.writeJSON(pairsBaseName+".json", r.Pairs)
}

func (w *JSONWriter) writeJSON(filename string, data interface{}) (err error) {
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

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON to %s: %w", path, err)
	}

	if w.verbose {
		tradelog.Debug("wrote report file", tradelog.F("file", filename))
	}
	return nil
}
