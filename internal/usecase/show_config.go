// Package usecase contains the application use cases.
package usecase

import (
	"context"

	"github.com/runoshun/relnotes/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	EffectiveConfig *domain.Config      // Merged configuration
	Sources         []domain.ConfigInfo // Files consulted, in merge order
}

// ShowConfig displays the effective configuration and where it came from.
type ShowConfig struct {
	configLoader domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configLoader: configLoader,
	}
}

// Execute loads the configuration.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, err
	}
	return &ShowConfigOutput{
		EffectiveConfig: cfg,
		Sources:         uc.configLoader.Sources(),
	}, nil
}
