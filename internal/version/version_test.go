package version

import (
	"runtime/debug"
	"testing"
)

func TestInfoUsesLdflagsValues(t *testing.T) {
	got := info("v1.2.0", "abc1234", "2025-11-02", func() (*debug.BuildInfo, bool) {
		t.Fatal("build info must not be read when a version is stamped")
		return nil, false
	})
	if want := "v1.2.0 (commit abc1234, built 2025-11-02)"; got != want {
		t.Fatalf("info = %q, want %q", got, want)
	}
}

func TestInfoFallsBackToBuildInfo(t *testing.T) {
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v0.3.1"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2025-11-01T10:00:00Z"},
			},
		}, true
	}
	if got, want := info("dev", "none", "unknown", read), "v0.3.1 (commit 0123456, built 2025-11-01T10:00:00Z)"; got != want {
		t.Fatalf("info = %q, want %q", got, want)
	}
}

func TestInfoDevelBuild(t *testing.T) {
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	}
	if got, want := info("dev", "none", "unknown", read), "dev (commit none, built unknown)"; got != want {
		t.Fatalf("info = %q, want %q", got, want)
	}
}
