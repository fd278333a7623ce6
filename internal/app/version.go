package app

import (
	"fmt"
	"runtime/debug"
)

// Build metadata. Release builds stamp it with
//
//	go build -ldflags "-X github.com/cours-de-latin/lingua/internal/app.Version=0.7.0" ./cmd/...
//
// An unstamped Commit falls back to the VCS revision the go command
// records in the binary.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version printed by lingua --version and reported by
// the server's /healthz.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit(), BuildTime)
}

func commit() string {
	if Commit != "unknown" {
		return Commit
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return s.Value[:12]
		}
	}
	return Commit
}
