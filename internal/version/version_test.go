package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	oldVersion, oldBuild, oldCommit := Version, BuildTime, Commit
	defer func() {
		Version, BuildTime, Commit = oldVersion, oldBuild, oldCommit
	}()

	tests := []struct {
		name      string
		version   string
		buildTime string
		commit    string
		want      string
	}{
		{"bare", "v1.2.3", "unknown", "", "v1.2.3"},
		{"build time only", "v1.2.3", "2026-01-02", "", "v1.2.3 (built=2026-01-02)"},
		{"commit shortened", "v1.2.3", "2026-01-02", "0123456789abcdef", "v1.2.3 (commit=0123456, built=2026-01-02)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, BuildTime, Commit = tt.version, tt.buildTime, tt.commit
			if got := Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if !strings.Contains(info.Platform, runtime.GOOS) {
		t.Errorf("Platform = %q", info.Platform)
	}
}
