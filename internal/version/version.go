package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-friendly version string. Builds made with `go install`
// carry no ldflags, so the module version from the embedded build info is
// used when available.
func Info() string {
	return info(Version, Commit, Date, debug.ReadBuildInfo)
}

func info(version, commit, date string, read func() (*debug.BuildInfo, bool)) string {
	if version == "dev" {
		if bi, ok := read(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			version = bi.Main.Version
			for _, s := range bi.Settings {
				switch s.Key {
				case "vcs.revision":
					if commit == "none" && len(s.Value) >= 7 {
						commit = s.Value[:7]
					}
				case "vcs.time":
					if date == "unknown" {
						date = s.Value
					}
				}
			}
		}
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
