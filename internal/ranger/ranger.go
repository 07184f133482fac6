// Package ranger bridges to an external dual-pane file manager as an
// alternate way of building the selection set.
package ranger

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Bridge prepares and harvests alternate-selector excursions.
type Bridge struct {
	Command string // file manager executable, e.g. "ranger"
}

// Session holds the generated artifacts of one excursion: a temporary rc
// binding a mark key that appends the hovered path to the handoff file, and
// the handoff file itself.
type Session struct {
	Cmd     *exec.Cmd
	dir     string
	handoff string
}

// Prepare generates the rc and handoff files and returns the session whose
// command is to be handed the terminal. The mark key ("e") appends the
// current path to the handoff file, one path per line.
func (b Bridge) Prepare(root string) (*Session, error) {
	dir, err := os.MkdirTemp("", "bundlepick-marks-")
	if err != nil {
		return nil, fmt.Errorf("preparing selector session: %w", err)
	}

	handoff := filepath.Join(dir, "marked")
	rc := filepath.Join(dir, "rc.conf")
	binding := fmt.Sprintf("map e shell echo %%p >> %s\n", handoff)
	if err := os.WriteFile(rc, []byte(binding), 0o644); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("writing selector rc: %w", err)
	}

	cmd := exec.Command(b.Command, "--cmd", "source "+rc, root)
	return &Session{Cmd: cmd, dir: dir, handoff: handoff}, nil
}

// Harvest reads the handoff file after the subprocess exits, returning the
// marked paths deduplicated in first-seen order. A missing handoff file (the
// user quit without marking anything) yields nil.
func (s *Session) Harvest() []string {
	data, err := os.ReadFile(s.handoff)
	if err != nil {
		return nil
	}
	seen := make(map[string]struct{})
	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		paths = append(paths, line)
	}
	return paths
}

// Cleanup removes the handoff file and generated rc. It runs regardless of
// whether the user produced a selection.
func (s *Session) Cleanup() {
	os.RemoveAll(s.dir)
}
