// Package selection holds the working set of absolute paths chosen for
// bundling.
package selection

import (
	"sort"
	"strings"

	"github.com/bundlepick/bundlepick/internal/ignore"
	"github.com/bundlepick/bundlepick/internal/listing"
)

// Set is an unordered collection of absolute paths with uniqueness enforced.
// All mutation goes through its methods; no other component touches the
// underlying storage.
type Set struct {
	members map[string]struct{}
}

// New returns an empty selection set.
func New() *Set {
	return &Set{members: make(map[string]struct{})}
}

// Contains reports membership of path.
func (s *Set) Contains(path string) bool {
	_, ok := s.members[path]
	return ok
}

// Add inserts path; no-op when already present.
func (s *Set) Add(path string) {
	s.members[path] = struct{}{}
}

// Remove deletes path; no-op when absent.
func (s *Set) Remove(path string) {
	delete(s.members, path)
}

// Toggle flips membership of path and returns the new state.
func (s *Set) Toggle(path string) bool {
	if s.Contains(path) {
		s.Remove(path)
		return false
	}
	s.Add(path)
	return true
}

// Len returns the number of selected paths.
func (s *Set) Len() int {
	return len(s.members)
}

// Paths returns a sorted snapshot of the current members.
func (s *Set) Paths() []string {
	paths := make([]string, 0, len(s.members))
	for p := range s.members {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Replace swaps the entire membership for paths, deduplicating and dropping
// blank lines. Used by the alternate-selector bridge.
func (s *Set) Replace(paths []string) {
	s.members = make(map[string]struct{}, len(paths))
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p != "" {
			s.members[p] = struct{}{}
		}
	}
}

// AnyUnder reports whether any member lies under dir (strictly below it).
func (s *Set) AnyUnder(dir string) bool {
	prefix := strings.TrimSuffix(dir, "/") + "/"
	for p := range s.members {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// MarkSubtree recursively adds (mark=true) or removes (mark=false) every
// non-ignored file under dir. Recursion never descends into an ignored entry,
// directory or file, so the entire subtree below an ignored directory is
// unreachable here: a file manually selected inside one stays selected after
// an unmark of its ancestor.
func (s *Set) MarkSubtree(dir string, mark bool, m *ignore.Matcher) error {
	entries, err := listing.List(dir, m, s)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Ignored {
			continue
		}
		if e.IsDir {
			if err := s.MarkSubtree(e.Path, mark, m); err != nil {
				return err
			}
			continue
		}
		if mark {
			s.Add(e.Path)
		} else {
			s.Remove(e.Path)
		}
	}
	return nil
}
