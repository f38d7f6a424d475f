// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Sources is a catalog of audio source files.
type Sources interface {
	// Files lists every audio file, sorted, as absolute paths.
	Files() ([]string, error)
	// Resolve maps a path (absolute or relative to the catalog root) to an
	// existing absolute file path.
	Resolve(path string) (string, error)
	// Duration returns the length of a resolved file in seconds, and false
	// when it cannot be measured.
	Duration(path string) (float64, bool)
}

// Dir is a Sources backed by a folder tree.
type Dir struct {
	root string
	cfg  config
}

var _ Sources = (*Dir)(nil)

// NewDir returns a catalog rooted at root, which must be an existing folder.
//
// Errors: ErrCatalog.
func NewDir(root string, opts ...Option) (*Dir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("NewDir(%q): %v: %w", root, err, ErrCatalog)
	}
	st, err := os.Stat(abs)
	if err != nil || !st.IsDir() {
		return nil, fmt.Errorf("NewDir(%q): not a folder: %w", root, ErrCatalog)
	}
	return &Dir{root: abs, cfg: newConfig(opts...)}, nil
}

// Root returns the absolute catalog root.
func (d *Dir) Root() string { return d.root }

// Files walks the tree and returns all files with an accepted extension.
// Hidden entries (leading dot) are skipped.
//
// Complexity: O(n log n) for n files.
func (d *Dir) Files() ([]string, error) {
	var out []string
	err := filepath.WalkDir(d.root, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(e.Name(), ".") && path != d.root {
			if e.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !e.IsDir() && d.accepts(path) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Dir.Files(%q): %v: %w", d.root, err, ErrCatalog)
	}
	slices.Sort(out)
	return out, nil
}

// Resolve returns the absolute path of an existing audio file.
//
// Errors: ErrCatalog when the file is missing, a folder, or has an unaccepted
// extension.
func (d *Dir) Resolve(path string) (string, error) {
	p := path
	if !filepath.IsAbs(p) {
		p = filepath.Join(d.root, p)
	}
	p = filepath.Clean(p)
	st, err := os.Stat(p)
	if err != nil || st.IsDir() {
		return "", fmt.Errorf("Dir.Resolve(%q): no such file: %w", path, ErrCatalog)
	}
	if !d.accepts(p) {
		return "", fmt.Errorf("Dir.Resolve(%q): unsupported extension: %w", path, ErrCatalog)
	}
	return p, nil
}

// Duration runs the configured probe.
func (d *Dir) Duration(path string) (float64, bool) {
	sec, err := d.cfg.probe(path)
	if err != nil {
		return 0, false
	}
	return sec, true
}

func (d *Dir) accepts(path string) bool {
	return slices.Contains(d.cfg.exts, strings.ToLower(filepath.Ext(path)))
}
