// Package version provides build-time metadata for the CLI application.
//
// All variables have sensible defaults and can be overridden at build time
// using -ldflags:
//
//	go build -ldflags "\
//	  -X 'github.com/slashdevops/macid/internal/version.Version=1.0.0' \
//	  -X 'github.com/slashdevops/macid/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)'"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// defaultVersion marks a build without -ldflags metadata.
const defaultVersion = "0.0.0"

var (
	// Version is the current version of the application
	Version = defaultVersion

	// BuildDate is the date the application was built
	BuildDate = "1970-01-01T00:00:00Z"

	// GitCommit is the commit hash the application was built from
	GitCommit = ""

	// GitBranch is the branch the application was built from
	GitBranch = ""

	// BuildUser is the user that built the application
	BuildUser = ""

	// GoVersion is the version of Go used to build the application
	GoVersion = runtime.Version()
)

// Short returns "<app> version: <version>", preferring module build info
// when no version was stamped at build time.
func Short(app string) string {
	if Version == defaultVersion {
		if info, ok := debug.ReadBuildInfo(); ok {
			return fmt.Sprintf("%s version: %s", app, info.Main.Version)
		}
	}

	return fmt.Sprintf("%s version: %s", app, Version)
}

// Long returns the detailed, single-line build description.
func Long(app string) string {
	var sb strings.Builder

	if Version == defaultVersion {
		if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Fprintf(&sb, "%s version: %s, ", app, info.Main.Version)
			fmt.Fprintf(&sb, "Git commit: %s, ", info.Main.Sum)
			fmt.Fprintf(&sb, "Go version: %s", info.GoVersion)

			return sb.String()
		}
	}

	fmt.Fprintf(&sb, "%s version: %s, ", app, Version)
	fmt.Fprintf(&sb, "Build date: %s, ", BuildDate)
	fmt.Fprintf(&sb, "Build user: %s, ", BuildUser)
	fmt.Fprintf(&sb, "Git commit: %s, ", GitCommit)
	fmt.Fprintf(&sb, "Git branch: %s, ", GitBranch)
	fmt.Fprintf(&sb, "Go version: %s", GoVersion)

	return sb.String()
}
