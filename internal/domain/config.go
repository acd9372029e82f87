package domain

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// Config represents the application configuration.
type Config struct {
	API      APIConfig  // [api] settings
	Log      LogConfig  // [log] settings
	Warnings []string   // Problems found while loading (unknown keys, bad values)
	View     ViewConfig // [view] settings
}

// APIConfig holds the remote task resource settings from the [api] section.
type APIConfig struct {
	BaseURL string        // Base URL; the task resource lives at <BaseURL>/tasks
	Timeout time.Duration // Per-request timeout
}

// ViewConfig holds table settings from the [view] section.
type ViewConfig struct {
	PageSize int // Rows per page
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string // File path ("" when the location is unavailable)
	Content string // Raw file content
	Exists  bool   // Whether the file could be read
}

// Default configuration values.
const (
	DefaultBaseURL  = "http://localhost:5000"
	DefaultTimeout  = 10 * time.Second
	DefaultLogLevel = "info"
)

// Directory, file and environment names.
const (
	AppDirName     = "tasktable"         // Directory name under the config/state homes
	ConfigFileName = "config.toml"       // Config file name
	LogFileName    = "tasktable.log"     // Log file name
	EnvAPIURL      = "TASKTABLE_API_URL" // Overrides api.base_url
	EnvConfigPath  = "TASKTABLE_CONFIG"  // Explicit config file path
	EnvLogLevel    = "TASKTABLE_LOG_LEVEL"
	DotEnvFileName = ".env"
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LogPath returns the log file path inside a state directory.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		View: ViewConfig{
			PageSize: DefaultPageSize,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// NormalizeBaseURL checks that raw is a usable http(s) URL and strips trailing slashes.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidBaseURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q (scheme must be http or https)", ErrInvalidBaseURL, raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q (missing host)", ErrInvalidBaseURL, raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w: %q (query and fragment are not allowed)", ErrInvalidBaseURL, raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// Validate checks the configuration and normalizes the base URL in place.
func (c *Config) Validate() error {
	base, err := NormalizeBaseURL(c.API.BaseURL)
	if err != nil {
		return err
	}
	c.API.BaseURL = base
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.View.PageSize <= 0 {
		c.View.PageSize = DefaultPageSize
	}
	return nil
}
