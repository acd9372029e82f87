// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/tasktable/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files and the environment.
// Precedence: defaults <- global file <- explicit file <- environment.
type Loader struct {
	getenv        func(string) string
	globalConfDir string // Path to global config directory (e.g., ~/.config/tasktable)
	explicitPath  string // File named by TASKTABLE_CONFIG; must exist when set
}

// NewLoader creates a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{
		getenv:        os.Getenv,
		globalConfDir: defaultGlobalConfigDir(),
		explicitPath:  os.Getenv(domain.EnvConfigPath),
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config directory,
// explicit file and environment lookup. This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir, explicitPath string, getenv func(string) string) *Loader {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &Loader{
		getenv:        getenv,
		globalConfDir: globalConfDir,
		explicitPath:  explicitPath,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// LoadDotEnv loads variables from a .env file without overriding the real environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// GlobalPath returns the global config file path, or "" when unavailable.
func (l *Loader) GlobalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// ExplicitPath returns the file named by TASKTABLE_CONFIG, if any.
func (l *Loader) ExplicitPath() string {
	return l.explicitPath
}

// Load returns the merged and validated configuration.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if global != nil {
		base = mergeConfigs(base, global)
	}

	if l.explicitPath != "" {
		explicit, err := l.loadFile(l.explicitPath)
		if err != nil {
			return nil, err
		}
		base = mergeConfigs(base, explicit)
	}

	l.applyEnv(base)

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	path := l.GlobalPath()
	if path == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(path)
}

// applyEnv applies environment overrides on top of file values.
func (l *Loader) applyEnv(cfg *domain.Config) {
	if v := l.getenv(domain.EnvAPIURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := l.getenv(domain.EnvLogLevel); v != "" {
		if isLogLevel(v) {
			cfg.Log.Level = v
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid %s: %s", domain.EnvLogLevel, v))
		}
	}
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := convertRawToDomainConfig(raw)
	for i, w := range cfg.Warnings {
		cfg.Warnings[i] = fmt.Sprintf("%s: %s", path, w)
	}
	return cfg, nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Zero values mean "not set" and are skipped when merging.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "api":
			for k, v := range m {
				switch k {
				case "base_url":
					if s, ok := v.(string); ok {
						res.API.BaseURL = s
					} else {
						warnings = append(warnings, "invalid [api].base_url: want string")
					}
				case "timeout":
					d, err := parseTimeout(v)
					if err != nil {
						warnings = append(warnings, fmt.Sprintf("invalid [api].timeout: %v", err))
					} else {
						res.API.Timeout = d
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [api]: %s", k))
				}
			}
		case "view":
			for k, v := range m {
				switch k {
				case "page_size":
					if n, ok := v.(int64); ok && n > 0 {
						res.View.PageSize = int(n)
					} else {
						warnings = append(warnings, "invalid [view].page_size: want positive integer")
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [view]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok && isLogLevel(s) {
						res.Log.Level = s
					} else {
						warnings = append(warnings, "invalid [log].level: want debug, info, warn or error")
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseTimeout accepts a duration string ("10s") or a whole number of seconds.
func parseTimeout(v any) (time.Duration, error) {
	switch t := v.(type) {
	case string:
		d, err := time.ParseDuration(t)
		if err != nil {
			return 0, err
		}
		if d <= 0 {
			return 0, fmt.Errorf("must be positive: %s", t)
		}
		return d, nil
	case int64:
		if t <= 0 {
			return 0, fmt.Errorf("must be positive: %d", t)
		}
		return time.Duration(t) * time.Second, nil
	default:
		return 0, fmt.Errorf("want duration string or seconds, got %T", v)
	}
}

func isLogLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		API:      base.API,
		View:     base.View,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.API.BaseURL != "" {
		result.API.BaseURL = override.API.BaseURL
	}
	if override.API.Timeout > 0 {
		result.API.Timeout = override.API.Timeout
	}
	if override.View.PageSize > 0 {
		result.View.PageSize = override.View.PageSize
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
