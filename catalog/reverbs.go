// SPDX-License-Identifier: MIT

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ambiscape/spherical"
)

// Layout names of a measured reverb set.
const (
	SoundfieldFolder = "Soundfield"
	PositionsFile    = "LsPos.txt"
	MetaFile         = "meta.yaml"
	FilterPrefix     = "ls"
	FilterExt        = ".wav"
)

// DefaultReverbOrder is assumed when a set carries no meta.yaml: the
// recordings are B-format, four channels.
const DefaultReverbOrder = 1

// Reverbs is a catalog of measured impulse-response sets.
type Reverbs interface {
	// Names lists the available sets, sorted.
	Names() ([]string, error)
	// Directions returns the loudspeaker directions of a set, in filter order.
	Directions(name string) ([]spherical.Direction, error)
	// AmbisonicsOrder returns the order of the recorded responses.
	AmbisonicsOrder(name string) (int, error)
}

// ReverbMeta is the optional per-set metadata file.
type ReverbMeta struct {
	AmbisonicsOrder *int   `yaml:"ambisonics_order"`
	Description     string `yaml:"description,omitempty"`
}

// ReverbDir is a Reverbs backed by the folder layout described in the package doc.
type ReverbDir struct {
	root string
}

var _ Reverbs = (*ReverbDir)(nil)

// NewReverbDir returns a reverb catalog rooted at root.
//
// Errors: ErrCatalog when root is not a folder.
func NewReverbDir(root string) (*ReverbDir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("NewReverbDir(%q): %v: %w", root, err, ErrCatalog)
	}
	st, err := os.Stat(abs)
	if err != nil || !st.IsDir() {
		return nil, fmt.Errorf("NewReverbDir(%q): not a folder: %w", root, ErrCatalog)
	}
	return &ReverbDir{root: abs}, nil
}

// Root returns the absolute catalog root.
func (d *ReverbDir) Root() string { return d.root }

// Names lists the non-hidden sub-folders of the root.
func (d *ReverbDir) Names() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("ReverbDir.Names: %v: %w", err, ErrCatalog)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			out = append(out, e.Name())
		}
	}
	slices.Sort(out)
	return out, nil
}

// FilterPath returns the impulse-response file of loudspeaker i (zero-based).
func (d *ReverbDir) FilterPath(name string, i int) string {
	return filepath.Join(d.soundfield(name), FilterPrefix+strconv.Itoa(i+1)+FilterExt)
}

// Directions parses LsPos.txt and checks it against the filter files.
//
// Errors: ErrCatalog for a missing set, missing Soundfield folder, unreadable
// or malformed positions, or a position/filter count mismatch.
func (d *ReverbDir) Directions(name string) ([]spherical.Direction, error) {
	sf, err := d.checkSet(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(sf, PositionsFile))
	if err != nil {
		return nil, fmt.Errorf("ReverbDir.Directions(%q): %v: %w", name, err, ErrCatalog)
	}
	defer f.Close()

	dirs, err := parsePositions(f)
	if err != nil {
		return nil, fmt.Errorf("ReverbDir.Directions(%q): %w", name, err)
	}

	filters, err := filepath.Glob(filepath.Join(sf, "*"+FilterExt))
	if err != nil {
		return nil, fmt.Errorf("ReverbDir.Directions(%q): %v: %w", name, err, ErrCatalog)
	}
	if len(filters) != len(dirs) {
		return nil, fmt.Errorf("ReverbDir.Directions(%q): %d positions but %d filters: %w",
			name, len(dirs), len(filters), ErrCatalog)
	}
	return dirs, nil
}

// AmbisonicsOrder reads meta.yaml when present, else DefaultReverbOrder.
//
// Errors: ErrCatalog for a missing set or malformed metadata.
func (d *ReverbDir) AmbisonicsOrder(name string) (int, error) {
	if _, err := d.checkSet(name); err != nil {
		return 0, err
	}
	meta, err := d.Meta(name)
	if err != nil {
		return 0, err
	}
	if meta.AmbisonicsOrder == nil {
		return DefaultReverbOrder, nil
	}
	return *meta.AmbisonicsOrder, nil
}

// Meta decodes meta.yaml; a missing file yields the zero ReverbMeta.
func (d *ReverbDir) Meta(name string) (ReverbMeta, error) {
	var meta ReverbMeta
	raw, err := os.ReadFile(filepath.Join(d.root, name, MetaFile))
	if os.IsNotExist(err) {
		return meta, nil
	}
	if err != nil {
		return meta, fmt.Errorf("ReverbDir.Meta(%q): %v: %w", name, err, ErrCatalog)
	}
	if err = yaml.Unmarshal(raw, &meta); err != nil {
		return meta, fmt.Errorf("ReverbDir.Meta(%q): %v: %w", name, err, ErrCatalog)
	}
	if meta.AmbisonicsOrder != nil && *meta.AmbisonicsOrder < 0 {
		return meta, fmt.Errorf("ReverbDir.Meta(%q): negative ambisonics_order: %w", name, ErrCatalog)
	}
	return meta, nil
}

func (d *ReverbDir) soundfield(name string) string {
	return filepath.Join(d.root, name, SoundfieldFolder)
}

func (d *ReverbDir) checkSet(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("ReverbDir: invalid name %q: %w", name, ErrCatalog)
	}
	if st, err := os.Stat(filepath.Join(d.root, name)); err != nil || !st.IsDir() {
		return "", fmt.Errorf("ReverbDir: no set %q: %w", name, ErrCatalog)
	}
	sf := d.soundfield(name)
	if st, err := os.Stat(sf); err != nil || !st.IsDir() {
		return "", fmt.Errorf("ReverbDir: set %q has no %s folder: %w", name, SoundfieldFolder, ErrCatalog)
	}
	return sf, nil
}

// parsePositions reads tab-separated cartesian rows and converts them to directions.
func parsePositions(r io.Reader) ([]spherical.Direction, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var dirs []spherical.Direction
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", PositionsFile, err, ErrCatalog)
		}
		var xyz [3]float64
		for i, field := range rec {
			if xyz[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				return nil, fmt.Errorf("%s line %d: %v: %w", PositionsFile, line, err, ErrCatalog)
			}
		}
		dir, _, err := spherical.FromCartesian(spherical.Point{X: xyz[0], Y: xyz[1], Z: xyz[2]})
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %v: %w", PositionsFile, line, err, ErrCatalog)
		}
		dirs = append(dirs, dir)
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%s: no positions: %w", PositionsFile, ErrCatalog)
	}
	return dirs, nil
}
