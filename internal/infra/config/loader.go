// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/allenbenz/cargo-testify/internal/domain"
)

// ProjectConfigName is the per-project config file, TOML, at the project
// root next to Cargo.toml.
const ProjectConfigName = ".cargo-testify.toml"

// GlobalConfigName is the per-user config file, YAML, under the user
// config directory (e.g. ~/.config/cargo-testify/).
const GlobalConfigName = "config.yaml"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from the global YAML file and the project
// TOML file. Merge order: defaults <- global <- project (later wins).
// Unknown keys produce warnings, never errors.
type Loader struct {
	globalConfDir string
}

// NewLoader creates a new Loader using the platform user config directory.
func NewLoader() *Loader {
	return &Loader{globalConfDir: defaultGlobalConfigDir()}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(dir string) *Loader {
	return &Loader{globalConfDir: dir}
}

func defaultGlobalConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "cargo-testify")
}

// fileConfig holds values read from one config file. Pointer fields
// distinguish "unset" from zero values during merging.
type fileConfig struct {
	command    *string
	logLevel   *string
	args       []string
	warnings   []string
	debounceMs *int64
	notify     *bool
}

// Load builds the resolved configuration for a project.
func (l *Loader) Load(projectDir string) (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	cfg.ProjectDir = projectDir

	if l.globalConfDir != "" {
		global, err := l.loadYAML(filepath.Join(l.globalConfDir, GlobalConfigName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		apply(cfg, global)
	}

	project, err := l.loadTOML(filepath.Join(projectDir, ProjectConfigName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	apply(cfg, project)

	return cfg, nil
}

func (l *Loader) loadTOML(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fromRaw(raw), nil
}

func (l *Loader) loadYAML(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fromRaw(raw), nil
}

// fromRaw converts a decoded file into a fileConfig, collecting warnings
// for keys it does not recognize.
func fromRaw(raw map[string]any) *fileConfig {
	fc := &fileConfig{}

	for section, value := range raw {
		switch section {
		case "command":
			if s, ok := value.(string); ok {
				fc.command = &s
			}
		case "tests":
			fc.parseTestsSection(value)
		case "notify":
			fc.parseNotifySection(value)
		case "log":
			fc.parseLogSection(value)
		default:
			fc.warnings = append(fc.warnings, fmt.Sprintf("unknown key: %s", section))
		}
	}

	return fc
}

func (fc *fileConfig) parseTestsSection(value any) {
	m, ok := value.(map[string]any)
	if !ok {
		return
	}
	for k, v := range m {
		switch k {
		case "args":
			if list, ok := v.([]any); ok {
				for _, item := range list {
					if s, ok := item.(string); ok {
						fc.args = append(fc.args, s)
					}
				}
			}
		case "debounce_ms":
			if n, ok := toInt64(v); ok {
				fc.debounceMs = &n
			}
		default:
			fc.warnings = append(fc.warnings, fmt.Sprintf("unknown key in [tests]: %s", k))
		}
	}
}

func (fc *fileConfig) parseNotifySection(value any) {
	m, ok := value.(map[string]any)
	if !ok {
		return
	}
	for k, v := range m {
		switch k {
		case "enabled":
			if b, ok := v.(bool); ok {
				fc.notify = &b
			}
		default:
			fc.warnings = append(fc.warnings, fmt.Sprintf("unknown key in [notify]: %s", k))
		}
	}
}

func (fc *fileConfig) parseLogSection(value any) {
	m, ok := value.(map[string]any)
	if !ok {
		return
	}
	for k, v := range m {
		switch k {
		case "level":
			if s, ok := v.(string); ok {
				fc.logLevel = &s
			}
		default:
			fc.warnings = append(fc.warnings, fmt.Sprintf("unknown key in [log]: %s", k))
		}
	}
}

// toInt64 normalizes the numeric types the TOML and YAML decoders emit.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// apply overlays a file's values onto the config. nil fc is a no-op.
func apply(cfg *domain.Config, fc *fileConfig) {
	if fc == nil {
		return
	}
	if fc.command != nil {
		cfg.Command = *fc.command
	}
	if fc.args != nil {
		cfg.ExtraArgs = fc.args
	}
	if fc.debounceMs != nil {
		cfg.IgnoreDuration = time.Duration(*fc.debounceMs) * time.Millisecond
	}
	if fc.notify != nil {
		cfg.Notifications = *fc.notify
	}
	if fc.logLevel != nil {
		cfg.LogLevel = *fc.logLevel
	}
	cfg.Warnings = append(cfg.Warnings, fc.warnings...)
}
