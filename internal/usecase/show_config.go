package usecase

import (
	"context"

	"github.com/runoshun/tasktable/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Effective      *domain.Config    // Merged configuration (nil if it failed to load)
	LoadErr        error             // Why the configuration could not be loaded
	GlobalConfig   domain.ConfigInfo // Global config file info
	ExplicitConfig domain.ConfigInfo // TASKTABLE_CONFIG file info
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configLoader  domain.ConfigLoader
	configManager domain.ConfigManager
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configLoader domain.ConfigLoader, configManager domain.ConfigManager) *ShowConfig {
	return &ShowConfig{
		configLoader:  configLoader,
		configManager: configManager,
	}
}

// Execute retrieves configuration file information and the effective configuration.
// A load failure is reported in the output rather than as an error, so a broken
// configuration can still be inspected.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.Load()
	return &ShowConfigOutput{
		Effective:      cfg,
		LoadErr:        err,
		GlobalConfig:   uc.configManager.GetGlobalConfigInfo(),
		ExplicitConfig: uc.configManager.GetExplicitConfigInfo(),
	}, nil
}
