package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = "BrainDump"
	// InboxDirName is the subfolder that receives day logs.
	InboxDirName = "inbox"
)

// ResolveBasePath determines where brainbar stores day logs, defaulting to
// ~/BrainDump/inbox. The location can be overridden by exporting BRAINBAR_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv("BRAINBAR_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return ExpandHome(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName, InboxDirName), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
