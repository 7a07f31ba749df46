// Package printing holds the application services around document
// rendering: template settings, export orchestration and the ledger.
package printing

import (
	"context"
	"errors"

	"github.com/prodsheet/backend/internal/domain/rendering"
	"github.com/prodsheet/backend/internal/domain/shared"
)

// SettingsService manages the singleton template settings document
type SettingsService struct {
	repo rendering.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo rendering.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the settings, upserting the defaults on first read
func (s *SettingsService) Get(ctx context.Context) (*rendering.TemplateSettings, error) {
	settings, err := s.repo.Find(ctx)
	if errors.Is(err, shared.ErrNotFound) {
		defaults := rendering.DefaultTemplateSettings()
		if err := s.repo.Upsert(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Update replaces the settings document. The id is forced to the
// singleton value regardless of what the caller sent.
func (s *SettingsService) Update(ctx context.Context, settings *rendering.TemplateSettings) (*rendering.TemplateSettings, error) {
	settings.ID = rendering.SettingsID
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
