// Package version reports the build identity of the binaries
package version

import "runtime/debug"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// Set at build time:
//
//	-ldflags "-X 'eventdir/internal/core/version.version=v0.1.0' -X 'eventdir/internal/core/version.commit=abcd'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Service is the name the api reports about itself
const Service = "eventdir-api"

// Info returns the build information, falling back to vcs stamps when ldflags were not set
func Info() BuildInfo {
	bi := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	bi.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "none" {
				bi.Commit = s.Value
			}
		case "vcs.time":
			if bi.Date == "unknown" {
				bi.Date = s.Value
			}
		}
	}
	return bi
}
