// Package version holds the build fingerprints stamped into the fixcap
// binary. GitCommit and BuildDate stay empty unless injected via -ldflags;
// the CLI renders missing values as "unknown".
package version

import "github.com/fatih/color"

var (
	major = color.New(color.FgYellow, color.Bold)
	minor = color.New(color.FgGreen, color.Bold)
	patch = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version, with colored segments when the
	// terminal supports it.
	Version = major.Sprint("0") + "." + minor.Sprint("1") + "." + patch.Sprint("0") + "-dev"

	GitCommit = ""
	BuildDate = ""
)
