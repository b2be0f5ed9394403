package domain

import (
	"path/filepath"
	"strings"
)

// triggerPaths lists the project artifacts, relative to the project root,
// whose changes re-run the test suite. Anything outside them is ignored.
var triggerPaths = []string{
	"src",
	"tests",
	"Cargo.toml",
	"Cargo.lock",
	"build.rs",
}

// ShouldTrigger reports whether a change at path warrants a test run.
// path is matched against each whitelist entry joined onto projectDir:
// equal to the entry, or contained under it.
func ShouldTrigger(projectDir, path string) bool {
	for _, entry := range triggerPaths {
		root := filepath.Join(projectDir, entry)
		if path == root || strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
