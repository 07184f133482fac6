// Package logging configures the session logger. The TUI owns the terminal,
// so log output goes to a file or nowhere.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// L is the session logger. It discards everything until Setup enables debug
// output.
var L = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Setup routes log entries to a file under the OS temp dir when debug is
// enabled. It returns the log file path, or "" when logging stays disabled.
func Setup(debug bool) string {
	if !debug {
		return ""
	}
	path := filepath.Join(os.TempDir(), "bundlepick.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return ""
	}
	L.SetOutput(f)
	L.SetLevel(logrus.DebugLevel)
	L.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return path
}
