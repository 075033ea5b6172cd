package version

import (
	"strings"
	"testing"
)

func TestGetVersionString(t *testing.T) {
	origVersion, origBuildTime, origCommit := Version, BuildTime, GitCommit
	defer func() {
		Version, BuildTime, GitCommit = origVersion, origBuildTime, origCommit
	}()

	t.Run("dev build shows bare version", func(t *testing.T) {
		Version, BuildTime, GitCommit = "dev", "unknown", "unknown"
		if got := GetVersionString(); got != "dev" {
			t.Errorf("got %q, want dev", got)
		}
	})

	t.Run("release build includes short commit", func(t *testing.T) {
		Version = "v1.2.3"
		BuildTime = "2026-03-01T00:00:00Z"
		GitCommit = "0123456789abcdef"

		got := GetVersionString()
		if !strings.Contains(got, "v1.2.3") || !strings.Contains(got, "0123456") {
			t.Errorf("got %q, want version and short commit", got)
		}
		if strings.Contains(got, "0123456789abcdef") {
			t.Errorf("got %q, commit should be truncated", got)
		}
	})
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	if info.GoVersion == "" || info.Platform == "" {
		t.Errorf("build info missing runtime fields: %+v", info)
	}
}
