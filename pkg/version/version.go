package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var Version string

// Get returns the embedded release version, e.g. v0.1.0
func Get() string {
	return strings.TrimSpace(Version)
}
