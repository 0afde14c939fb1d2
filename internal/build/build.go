// Package build provides build-time information for the CLI application.
// Values are injected through ldflags on cmd/create-repro and registered here
// at startup so every package reads the same values.
package build

import "runtime"

var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Set records the ldflags values. Empty arguments keep the current value.
func Set(v, commit, date string) {
	if v != "" {
		version = v
	}
	if commit != "" {
		gitCommit = commit
	}
	if date != "" {
		buildDate = date
	}
}

// Current returns the build information of the running binary.
func Current() Info {
	return Info{
		Version:   version,
		GoVersion: runtime.Version(),
		Commit:    gitCommit,
		BuildDate: buildDate,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
