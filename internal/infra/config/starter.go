package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/allenbenz/cargo-testify/internal/domain"
)

const starterTemplate = `# cargo-testify configuration.
# Values here override the global config (` + "`~/.config/cargo-testify/config.yaml`" + `).

# Program used to run the suite; the first argument is always "test".
#command = "cargo"

[tests]
# Extra arguments forwarded to ` + "`cargo test`" + `.
#args = ["--workspace"]
# Cooldown between runs, in milliseconds.
#debounce_ms = 300

[notify]
# Set to false to silence desktop notifications.
#enabled = true

[log]
# One of: debug, info, warn, error.
#level = "info"
`

// WriteStarter writes a commented starter project config. It refuses to
// overwrite an existing file.
func WriteStarter(projectDir string) (string, error) {
	path := filepath.Join(projectDir, ProjectConfigName)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644) //nolint:gosec // Config file is meant to be committed
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%s: %w", path, domain.ErrConfigExists)
		}
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(starterTemplate); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
