package level

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Loader loads levels from a directory tree.
type Loader struct {
	Root string // Shown in errors and stored as the level source prefix
	fsys fs.FS
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over any file system, such as an embed.FS.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{Root: root, fsys: fsys}
}

// LoadAll recursively scans and loads every level file.
// Levels are sorted by ID, which is also the play order. Any malformed file
// fails the whole load: a level that cannot be interpreted cannot be played.
func (l *Loader) LoadAll() ([]*Level, error) {
	var levels []*Level
	seen := make(map[string]string)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(p) {
			return nil
		}

		lvl, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		if prev, dup := seen[lvl.ID]; dup {
			return fmt.Errorf("duplicate level id %q in %s and %s", lvl.ID, prev, lvl.Source)
		}
		seen[lvl.ID] = lvl.Source
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading levels from %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file relative to the loader root.
func (l *Loader) LoadFile(p string) (*Level, error) {
	source := filepath.Join(l.Root, filepath.FromSlash(p))
	lvl, err := parseFS(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", source, err)
	}
	lvl.Source = source
	return lvl, nil
}

// parseFS reads and decodes one level file.
func parseFS(fsys fs.FS, p string) (*Level, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}
	return ParseYAML(data)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (*Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in play order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// ParseFile loads one level file from disk by path.
func ParseFile(p string) (*Level, error) {
	lvl, err := parseFS(os.DirFS(filepath.Dir(p)), filepath.Base(p))
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", p, err)
	}
	lvl.Source = p
	return lvl, nil
}

// IsLevelFile checks whether a path has a supported level extension.
func IsLevelFile(p string) bool {
	ext := strings.ToLower(path.Ext(filepath.ToSlash(p)))
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// IndexOf returns the position of the level with the given ID, or -1.
func IndexOf(levels []*Level, id string) int {
	for i, lvl := range levels {
		if lvl.ID == id {
			return i
		}
	}
	return -1
}
