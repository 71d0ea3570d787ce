// Package version exposes build information about the running binary.
// The Git* and BuildDate variables are meant to be set at build time:
//
//	go build -ldflags "-X github.com/valentin-kaiser/hwident/version.GitTag=v1.0.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
)

// Build information, overridable with ldflags
var (
	GitTag    = "v0.0.0"
	GitCommit = "unknown"
	GitShort  = "unknown"
	BuildDate = "unknown"
)

// Version describes the build of the running binary
type Version struct {
	GitTag    string            `json:"git_tag"`
	GitCommit string            `json:"git_commit"`
	GitShort  string            `json:"git_short"`
	BuildDate string            `json:"build_date"`
	GoVersion string            `json:"go_version"`
	Platform  string            `json:"platform"`
	Modules   map[string]string `json:"modules"`
}

// Get returns the version information of the running binary
func Get() *Version {
	v := &Version{
		GitTag:    GitTag,
		GitCommit: GitCommit,
		GitShort:  GitShort,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Modules:   make(map[string]string),
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			v.Modules[dep.Path] = dep.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if v.GitCommit == "unknown" {
					v.GitCommit = setting.Value
				}
				if v.GitShort == "unknown" && len(setting.Value) >= 7 {
					v.GitShort = setting.Value[:7]
				}
			case "vcs.time":
				if v.BuildDate == "unknown" {
					v.BuildDate = setting.Value
				}
			}
		}
	}

	return v
}

// String returns a single line version summary
func (v *Version) String() string {
	return fmt.Sprintf("%s (%s, %s, built %s)", v.GitTag, v.GitShort, v.GoVersion, v.BuildDate)
}

// Major returns the major version number parsed from GitTag, or 0 if the
// tag is not a semantic version
func Major() int {
	return semverPart(0)
}

// Minor returns the minor version number parsed from GitTag, or 0 if the
// tag is not a semantic version
func Minor() int {
	return semverPart(1)
}

// Patch returns the patch version number parsed from GitTag, or 0 if the
// tag is not a semantic version
func Patch() int {
	return semverPart(2)
}

func semverPart(index int) int {
	tag := strings.TrimPrefix(GitTag, "v")
	parts := strings.Split(tag, ".")
	if index >= len(parts) {
		return 0
	}

	value, err := strconv.Atoi(parts[index])
	if err != nil {
		return 0
	}
	return value
}
