// Package version carries build identification for the ontovet binary.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags "-X github.com/ontovet/ontovet/version.Version=...".
var (
	Version    = "dev"     // semantic version when built from a tag
	CommitHash = "unknown" // git commit the binary was built from
	BuildTime  = "unknown" // build timestamp
)

// Info bundles the build identification with runtime facts.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("ontovet %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
}
