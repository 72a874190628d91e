// Package logging routes the process log to a file. The dashboard
// owns the terminal, so stderr is not an option while it runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	appDir   = "cloudpulse"
	fileName = "cloudpulse.log"
)

// Setup points the default logger at the log file and returns a
// closer. Call once at startup; log.Warn and friends work everywhere
// afterwards.
func Setup() (io.Closer, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: failed to create directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: failed to open %s: %w", path, err)
	}

	log.SetOutput(f)
	log.SetReportTimestamp(true)
	if os.Getenv("CLOUDPULSE_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}
	return f, nil
}

// Path returns the log file location under the user cache directory.
func Path() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("logging: unable to determine cache directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}
