package app

import "fmt"

// Set at link time, e.g. go build -ldflags "-X github.com/heartmarshall/conlang-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the link-time build info for /health and `conlang version`.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
