package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/tasktable/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager inspects and creates configuration files.
type Manager struct {
	loader *Loader
}

// NewManager creates a Manager for the files the loader reads.
func NewManager(loader *Loader) *Manager {
	return &Manager{loader: loader}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	return getConfigInfo(m.loader.GlobalPath())
}

// GetExplicitConfigInfo returns information about the file named by TASKTABLE_CONFIG.
func (m *Manager) GetExplicitConfigInfo() domain.ConfigInfo {
	return getConfigInfo(m.loader.ExplicitPath())
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	if path == "" {
		return domain.ConfigInfo{}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{Path: path}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig writes the default configuration to the global config file.
// It returns the written path.
func (m *Manager) InitGlobalConfig() (string, error) {
	path := m.loader.GlobalPath()
	if path == "" {
		return "", errors.New("global config directory not available")
	}
	if _, err := os.Stat(path); err == nil {
		return path, domain.ErrConfigExists
	}

	content, err := Render(domain.NewDefaultConfig())
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(content), 0o600)
}

// fileConfig mirrors the on-disk TOML layout.
type fileConfig struct {
	API struct {
		BaseURL string `toml:"base_url"`
		Timeout string `toml:"timeout"`
	} `toml:"api"`
	View struct {
		PageSize int `toml:"page_size"`
	} `toml:"view"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

// Render encodes cfg as TOML in the layout the loader reads.
func Render(cfg *domain.Config) (string, error) {
	var fc fileConfig
	fc.API.BaseURL = cfg.API.BaseURL
	fc.API.Timeout = cfg.API.Timeout.String()
	fc.View.PageSize = cfg.View.PageSize
	fc.Log.Level = cfg.Log.Level

	out, err := toml.Marshal(fc)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return string(out), nil
}
