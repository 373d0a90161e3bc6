// Package version provides build version information for the application.
// This is a separate package to avoid import cycles between cli and wailsapp.
package version

import (
	"fmt"
	"runtime"
)

// Version is the build version string, set by ldflags during build.
// Format: vX.Y.Z or vX.Y.Z-dev for development builds.
var Version = "v0.3.0-dev"

// BuildTime is the build timestamp, set by ldflags during build.
var BuildTime = "unknown"

// Commit is the VCS revision, set by ldflags during build.
var Commit = ""

// Info is the version payload shown by the About dialog and `modshell version`.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	BuildTime string `json:"buildTime" yaml:"build_time"`
	Commit    string `json:"commit,omitempty" yaml:"commit,omitempty"`
	GoVersion string `json:"goVersion" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the current build metadata.
func Get() Info {
	return Info{
		Version:   Version,
		BuildTime: BuildTime,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Summary returns a concise single-line version string.
func Summary() string {
	s := Version
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		s += fmt.Sprintf(" (commit=%s, built=%s)", c, BuildTime)
	} else if BuildTime != "unknown" {
		s += fmt.Sprintf(" (built=%s)", BuildTime)
	}
	return s
}
