// Package version carries the build fingerprints of the calscan binary.
// Release builds stamp them via -ldflags, e.g.
//
//	go build -ldflags "-X calscan/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "github.com/fatih/color"

var (
	// Version is the semantic version of the tool.
	Version = "0.1.0"
	// GitCommit is the short commit hash of the build. Empty for local builds.
	GitCommit = ""
	// BuildDate is the build timestamp in ISO-8601. Empty for local builds.
	BuildDate = ""
)

// Banner renders the one-line version header for terminal output. Color is
// resolved at call time, so it honors color.NoColor.
func Banner() string {
	s := color.New(color.FgCyan, color.Bold).Sprintf("calscan %s", Version)
	if GitCommit != "" {
		s += color.New(color.Faint).Sprintf(" (%s)", GitCommit)
	}
	return s
}
