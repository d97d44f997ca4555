// Package buildinfo exposes version information injected at link time.
//
//	go build -ldflags "-X github.com/matzehuels/mekko/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/mekko/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Generator identifies the producing binary in rendered artifacts, e.g.
// "mekko v0.3.0 (4f2c1ab)".
func Generator() string {
	if Commit == "none" || Commit == "" {
		return "mekko " + Version
	}
	return fmt.Sprintf("mekko %s (%s)", Version, Commit)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
