// Package version reports how the swatch binary was built. Release builds set
// the variables below with -ldflags "-X"; local builds report "dev".
package version

import (
	"fmt"
	"runtime"
)

const unknown = "unknown"

var (
	// Version is the release tag, e.g. 1.2.0.
	Version = "dev"

	// Commit is the git revision the binary was built from.
	Commit = unknown

	// Date is the build time (RFC3339).
	Date = unknown

	// GoVersion is the toolchain that compiled the binary.
	GoVersion = runtime.Version()
)

// Info is the build information printed by `swatch version --json`.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the one-line form printed by `swatch version` and `swatch --version`.
// Commit and date are only shown for release builds.
func String() string {
	info := GetInfo()
	if Commit == unknown || Date == unknown {
		return fmt.Sprintf("swatch version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("swatch version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short returns the bare version, used as the cobra Version field.
func Short() string {
	return Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
