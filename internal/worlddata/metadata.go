package worlddata

import (
	"io"

	"github.com/sectorforge/tradecore/pkg/yaml"
)

// Metadata is the companion structured document for a sector: its lattice
// offset, subsector letter -> name, and allegiance code -> name.
type Metadata struct {
	Abbreviation string            `yaml:"abbreviation"`
	OffsetX      int               `yaml:"offset_x"`
	OffsetY      int               `yaml:"offset_y"`
	Subsectors   map[string]string `yaml:"subsectors"`
	Allegiances  map[string]string `yaml:"allegiances"`
}

// ParseMetadata decodes a sector's metadata document.
func ParseMetadata(r io.Reader) (*Metadata, error) {
	var m Metadata
	if err := yaml.Parse(r, &m); err != nil {
		return nil, err
	}
	if m.Subsectors == nil {
		m.Subsectors = map[string]string{}
	}
	if m.Allegiances == nil {
		m.Allegiances = map[string]string{}
	}
	return &m, nil
}
