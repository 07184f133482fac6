// Package bundler invokes the external content-bundling tool with the
// current selection.
package bundler

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

var (
	// ErrEmptySelection is returned by every run mode when no files are
	// selected. It is a no-op condition, not a failure.
	ErrEmptySelection = errors.New("no files selected")

	// ErrBundlerFailed wraps a non-zero exit or spawn failure of the external
	// tool, carrying its own diagnostic text.
	ErrBundlerFailed = errors.New("bundler invocation failed")
)

// Config describes how to drive the external bundling tool.
type Config struct {
	Command       string   // executable name or path
	IncludeFlag   string   // flag carrying the inclusion argument
	Delimiter     string   // joins root-relative paths into one argument
	ClipboardFlag string   // bundler-native clipboard flag; empty = capture stdout ourselves
	PromptFlag    string   // flag carrying free-text guidance
	ExtraArgs     []string // always appended
}

// Invoker builds bundler invocations for a fixed working root.
type Invoker struct {
	cfg       Config
	root      string
	writeClip func(string) error // swapped out in tests
}

// New returns an Invoker whose relative paths are computed against root.
func New(cfg Config, root string) *Invoker {
	return &Invoker{
		cfg:       cfg,
		root:      root,
		writeClip: clipboard.WriteAll,
	}
}

// IncludeArg converts each selected absolute path to a root-relative path
// and joins them with the configured delimiter.
func (inv *Invoker) IncludeArg(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", ErrEmptySelection
	}
	rels := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(inv.root, p)
		if err != nil {
			rel = p
		}
		rels = append(rels, filepath.ToSlash(rel))
	}
	return strings.Join(rels, inv.cfg.Delimiter), nil
}

// baseArgs assembles the argument list shared by all run modes.
func (inv *Invoker) baseArgs(paths []string) ([]string, error) {
	include, err := inv.IncludeArg(paths)
	if err != nil {
		return nil, err
	}
	args := []string{inv.cfg.IncludeFlag, include}
	args = append(args, inv.cfg.ExtraArgs...)
	return args, nil
}

// DirectCommand returns the command for a terminal-inheriting run. The
// caller hands the terminal over and blocks until the process exits.
func (inv *Invoker) DirectCommand(paths []string) (*exec.Cmd, error) {
	args, err := inv.baseArgs(paths)
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(inv.cfg.Command, args...)
	cmd.Dir = inv.root
	return cmd, nil
}

// RunToClipboard runs the bundler without the terminal and places its output
// on the system clipboard: through the bundler's own clipboard flag when one
// is configured, otherwise by capturing stdout and writing it ourselves.
func (inv *Invoker) RunToClipboard(paths []string) error {
	args, err := inv.baseArgs(paths)
	if err != nil {
		return err
	}

	if inv.cfg.ClipboardFlag != "" {
		cmd := exec.Command(inv.cfg.Command, append(args, inv.cfg.ClipboardFlag)...)
		cmd.Dir = inv.root
		if out, err := cmd.CombinedOutput(); err != nil {
			return invocationError(err, out)
		}
		return nil
	}

	cmd := exec.Command(inv.cfg.Command, args...)
	cmd.Dir = inv.root
	out, err := cmd.Output()
	if err != nil {
		return invocationError(err, exitStderr(err))
	}
	if err := inv.writeClip(string(out)); err != nil {
		return fmt.Errorf("%w: clipboard write: %v", ErrBundlerFailed, err)
	}
	return nil
}

// RunWithPrompt runs the bundler with free-text guidance and returns its
// combined output for in-process display.
func (inv *Invoker) RunWithPrompt(paths []string, prompt string) (string, error) {
	args, err := inv.baseArgs(paths)
	if err != nil {
		return "", err
	}
	args = append(args, inv.cfg.PromptFlag, prompt)

	cmd := exec.Command(inv.cfg.Command, args...)
	cmd.Dir = inv.root
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", invocationError(err, out)
	}
	return string(out), nil
}

// exitStderr extracts captured stderr from an exec error, if any.
func exitStderr(err error) []byte {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Stderr
	}
	return nil
}

// invocationError wraps a subprocess failure with its diagnostic output.
func invocationError(err error, out []byte) error {
	detail := strings.TrimSpace(string(out))
	if detail == "" {
		detail = err.Error()
	}
	return fmt.Errorf("%w: %s", ErrBundlerFailed, detail)
}
