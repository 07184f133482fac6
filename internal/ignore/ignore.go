// Package ignore loads the project's ignore file and decides whether a path
// is excluded from selection.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// DefaultFileName is the ignore file read from the working root.
const DefaultFileName = ".bundleignore"

// pattern is one parsed line from the ignore file.
type pattern struct {
	raw     string
	negated bool      // leading "!": recognized, never causes exclusion
	dir     bool      // trailing "/": match by prefix or path segment
	g       glob.Glob // compiled glob for non-directory patterns
}

// Matcher answers exclusion queries for paths under a fixed working root.
// The pattern set is loaded once per session and never reloaded.
type Matcher struct {
	root     string
	patterns []pattern
}

// Load reads the ignore file named name under root. A missing or unreadable
// file yields a matcher with no patterns; that is not an error condition for
// the caller.
func Load(root, name string) *Matcher {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return New(root, nil)
	}
	return New(root, strings.Split(string(data), "\n"))
}

// New builds a Matcher from raw pattern lines. Blank lines and lines
// starting with "#" are dropped; the rest are trimmed.
func New(root string, lines []string) *Matcher {
	m := &Matcher{root: root}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p := pattern{raw: line}
		if strings.HasPrefix(line, "!") {
			p.negated = true
			m.patterns = append(m.patterns, p)
			continue
		}
		if strings.HasSuffix(line, "/") {
			p.dir = true
			p.raw = strings.TrimSuffix(line, "/")
			m.patterns = append(m.patterns, p)
			continue
		}
		g, err := glob.Compile(line)
		if err != nil {
			continue // unparseable pattern, skip rather than fail the session
		}
		p.g = g
		m.patterns = append(m.patterns, p)
	}
	return m
}

// Len returns the number of loaded patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// Match reports whether absPath is excluded. Negation patterns ("!...") never
// cause exclusion and do not re-include paths excluded by other patterns;
// this is intentionally narrower than gitignore semantics.
//
// Directory patterns ("name/") match when the root-relative path equals the
// pattern or contains it as a path segment anywhere. Other patterns match the
// whole relative path as a glob where "*" is any run of characters and "?"
// any single character.
func (m *Matcher) Match(absPath string) bool {
	rel, err := filepath.Rel(m.root, absPath)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, p := range m.patterns {
		if p.negated {
			continue
		}
		if p.dir {
			if rel == p.raw || strings.Contains("/"+rel+"/", "/"+p.raw+"/") {
				return true
			}
			continue
		}
		if p.g.Match(rel) {
			return true
		}
	}
	return false
}
