// Package tools probes the external collaborators once at session start.
// The result is passed explicitly into the components that need it; nothing
// re-probes at runtime.
package tools

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrBundlerMissing is the fatal startup condition: the bundling tool must
// resolve before any UI is drawn.
var ErrBundlerMissing = errors.New("required bundler not found")

// Capabilities records which external tools resolved on PATH.
type Capabilities struct {
	BundlerPath string
	PagerPath   string // empty when unavailable; preview falls back to raw content
	RangerPath  string // empty when unavailable; alternate selector is disabled
}

// Probe resolves the configured tool names. The bundler is required; the
// pager and alternate selector are optional and their absence only degrades
// the corresponding features.
func Probe(bundlerCmd, pagerCmd, rangerCmd string) (Capabilities, error) {
	var caps Capabilities

	path, err := exec.LookPath(bundlerCmd)
	if err != nil {
		return caps, fmt.Errorf("%w: %q is not on PATH", ErrBundlerMissing, bundlerCmd)
	}
	caps.BundlerPath = path

	if p, err := exec.LookPath(pagerCmd); err == nil {
		caps.PagerPath = p
	}
	if p, err := exec.LookPath(rangerCmd); err == nil {
		caps.RangerPath = p
	}
	return caps, nil
}

// HasPager reports whether the preview pager resolved.
func (c Capabilities) HasPager() bool {
	return c.PagerPath != ""
}

// HasRanger reports whether the alternate selector resolved.
func (c Capabilities) HasRanger() bool {
	return c.RangerPath != ""
}
