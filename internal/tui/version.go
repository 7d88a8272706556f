package tui

import "fmt"

// Set at build time with -ldflags "-X".
var (
	AppVersion = "0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

// VersionLabel is the version string shown by the CLI and the footer.
func VersionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}
