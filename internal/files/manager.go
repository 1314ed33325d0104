package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dirPermissions = 0o755
	// FilePermissions is the mode used when a day log is first created.
	FilePermissions = 0o644
)

// Manager centralizes where day logs live on disk and how files are named.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/BrainDump/inbox (or another location determined
// by ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	basePath, err = ExpandHome(basePath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing all day logs.
func (m *Manager) BasePath() string {
	return m.basePath
}

// DayPath resolves the absolute path to the markdown file for the supplied
// instant's calendar date. The file may not exist yet.
func (m *Manager) DayPath(t time.Time) string {
	return filepath.Join(m.basePath, fmt.Sprintf("%04d-%02d-%02d.md", t.Year(), t.Month(), t.Day()))
}

// EnsureDir creates the capture root and any missing parents. Calling it when
// the directory already exists is not an error.
func (m *Manager) EnsureDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}
