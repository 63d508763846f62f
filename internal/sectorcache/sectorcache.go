// Package sectorcache resolves selected sector names to the local on-disk
// documents an external fetcher has cached, and loads them into
// worlddata.Sector values. It never performs network I/O: the HTTP fetcher
// that populates the cache directory is an out-of-scope external
// collaborator (spec.md §1).
package sectorcache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sectorforge/tradecore/internal/hexcoord"
	"github.com/sectorforge/tradecore/internal/worlddata"
)

// File suffixes a cache directory entry is expected to carry for a sector
// named "name": "<dir>/<name>.sec" (survey table) and "<dir>/<name>.meta.yaml"
// (metadata document).
const (
	surveyTableSuffix = ".sec"
	metadataSuffix    = ".meta.yaml"
	versionFileName   = ".sector-cache-version"
)

// Loader loads cached sector documents from a local directory.
type Loader struct {
	Dir string
}

// New creates a Loader rooted at dir.
func New(dir string) *Loader {
	return &Loader{Dir: dir}
}

// surveyPath and metadataPath return the expected file paths for a sector.
func (l *Loader) surveyPath(name string) string {
	return filepath.Join(l.Dir, name+surveyTableSuffix)
}

func (l *Loader) metadataPath(name string) string {
	return filepath.Join(l.Dir, name+metadataSuffix)
}

// MissingSectorError reports a requested sector whose cached documents
// could not be resolved on disk, per spec.md §7's MissingSector kind.
type MissingSectorError struct {
	Sector string
	Path   string
}

func (e *MissingSectorError) Error() string {
	return fmt.Sprintf("missing sector %q: cached document not found at %s", e.Sector, e.Path)
}

// ExitCode returns the process exit code for a MissingSectorError.
func (e *MissingSectorError) ExitCode() int {
	return worlddata.ExitCodeMissingSector
}

// Load resolves name to its two cached documents, parses them, and returns
// the assembled Sector.
func (l *Loader) Load(name string) (*worlddata.Sector, error) {
	surveyPath := l.surveyPath(name)
	surveyFile, err := os.Open(surveyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingSectorError{Sector: name, Path: surveyPath}
		}
		return nil, err
	}
	defer func() { _ = surveyFile.Close() }()

	metaPath := l.metadataPath(name)
	metaFile, err := os.Open(metaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingSectorError{Sector: name, Path: metaPath}
		}
		return nil, err
	}
	defer func() { _ = metaFile.Close() }()

	meta, err := worlddata.ParseMetadata(metaFile)
	if err != nil {
		return nil, &worlddata.ParseError{Sector: name, Reason: "malformed metadata document " + metaPath + ": " + err.Error()}
	}

	offset := hexcoord.Offset{SX: meta.OffsetX, SY: meta.OffsetY}
	worlds, err := worlddata.ParseSurveyTable(name, offset, surveyFile)
	if err != nil {
		return nil, err
	}

	abbreviation := meta.Abbreviation
	if abbreviation == "" {
		abbreviation = name
	}

	return worlddata.BuildSector(name, abbreviation, offset, meta, worlds)
}

// LoadAll resolves and loads every named sector, in the order given.
func (l *Loader) LoadAll(names []string) ([]*worlddata.Sector, error) {
	sectors := make([]*worlddata.Sector, 0, len(names))
	for _, name := range names {
		s, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		sectors = append(sectors, s)
	}
	return sectors, nil
}

// ListAvailable returns the names of every sector with a cached survey
// table in the loader's directory, sorted for determinism. Used to
// discover candidate neighboring sectors when materializing the halo of
// unselected worlds (spec.md §9's cross-sector boundary note).
func (l *Loader) ListAvailable() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(e.Name(), surveyTableSuffix); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// StoredVersion reads the version stamp the external fetcher left in the
// cache directory for a sector, or "" if no stamp is present (a cache miss
// the fetcher has not populated yet).
func (l *Loader) StoredVersion(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(l.Dir, name+versionFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// Stale reports whether the cached copy of a sector has no version stamp or
// a stamp different from wantVersion, used by callers to decide whether to ask the external
// fetcher to refresh it before loading.
func (l *Loader) Stale(name, wantVersion string) (bool, error) {
	stored, err := l.StoredVersion(name)
	if err != nil {
		return false, err
	}
	if stored == "" {
		return true, nil
	}
	return stored != wantVersion, nil
}
