// Package version provides build and version information for cdk2env.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information - these will be set by GoReleaser at build time
var (
	Version = ""
	Commit  = "none"
	Date    = "unknown"
)

// Unknown is reported when no version information is available
const Unknown = "unknown"

// Info represents version and build information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// readBuildInfo is replaced in tests
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the linked version, the module version recorded by
// `go install`, or "unknown".
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Unknown
}

// GetInfo returns the current version and build information
func GetInfo() Info {
	return Info{
		Version:   GetVersion(),
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// GetFullVersionString returns a detailed version string with all build info
func GetFullVersionString() string {
	info := GetInfo()
	return fmt.Sprintf(`cdk2env %s
Commit:     %s
Built:      %s
Go version: %s
Platform:   %s`, info.Version, info.Commit, info.Date, info.GoVersion, info.Platform)
}
