// Package version reports which lpa-frontend build is running. The
// variables are stamped by the release build:
//
//	go build -ldflags "-X github.com/gotrs-io/lpa-frontend/internal/version.Tag=v1.2.0 \
//	  -X github.com/gotrs-io/lpa-frontend/internal/version.Commit=$(git rev-parse HEAD)"
package version

import (
	"fmt"
	"runtime"
)

// Name is the binary name shown in version output.
const Name = "lpa-frontend"

var (
	// Tag is the release tag, or "dev" for local builds.
	Tag = "dev"

	// Commit is the full git SHA. Asset URLs are cache-busted with part of it.
	Commit = "unknown"

	BuildDate = "unknown"
)

// Info is the build metadata served by `version --json`.
type Info struct {
	Name      string `json:"name"`
	Tag       string `json:"tag"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

func GetInfo() Info {
	return Info{
		Name:      Name,
		Tag:       Tag,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// ShortCommit is the first seven characters of Commit.
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}

// String is "lpa-frontend dev (abc1234)".
func String() string {
	return fmt.Sprintf("%s %s (%s)", Name, Tag, ShortCommit())
}

// Full adds the build date and Go version to String.
func Full() string {
	return fmt.Sprintf("%s built %s with %s", String(), BuildDate, runtime.Version())
}
