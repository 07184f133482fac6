// Package pager renders file previews through an external syntax-highlighting
// pager, degrading to raw content when the pager is unavailable.
package pager

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Render returns the formatted preview text for path. When command is empty
// or the pager fails, the raw file content is returned instead; when the file
// itself cannot be read, a diagnostic message is returned so the preview
// surface always has something to show. Render never fails the session.
func Render(command, path string, width int) string {
	if command != "" {
		args := []string{
			"--color=always",
			"--style=numbers",
			"--paging=never",
		}
		if width > 0 {
			args = append(args, "--terminal-width="+strconv.Itoa(width))
		}
		args = append(args, path)
		out, err := exec.Command(command, args...).Output()
		if err == nil {
			return string(out)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("unable to preview %s: %v", path, err)
	}
	return string(data)
}
