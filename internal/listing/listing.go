// Package listing projects a directory's immediate children into annotated
// entries for display and selection.
package listing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bundlepick/bundlepick/internal/ignore"
)

// ErrDirectoryUnreadable marks a directory that could not be listed
// (permissions, deletion race). Callers refuse the navigation and keep their
// prior state.
var ErrDirectoryUnreadable = errors.New("directory unreadable")

// Entry is one directory child. Ignored and Selected are derived on every
// listing call and never persisted.
type Entry struct {
	Name     string
	Path     string // absolute
	IsDir    bool
	Ignored  bool
	Selected bool
}

// Selection is the read-only view of the selection set that listing needs.
type Selection interface {
	Contains(path string) bool
}

// List reads dir's immediate children (non-recursive) and annotates each with
// type, ignored, and selected flags. Directories sort before files; within
// each group entries sort by case-sensitive lexicographic byte order, stable
// under repeated calls with an unchanged filesystem.
func List(dir string, m *ignore.Matcher, sel Selection) ([]Entry, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryUnreadable, dir, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		path := filepath.Join(dir, child.Name())
		e := Entry{
			Name:  child.Name(),
			Path:  path,
			IsDir: child.IsDir(),
		}
		if m != nil {
			e.Ignored = m.Match(path)
		}
		if sel != nil {
			e.Selected = sel.Contains(path)
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
