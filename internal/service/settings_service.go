package service

import (
	"context"
	"encoding/json"

	"go-news-app/internal/cache"
)

// SettingRepository defines the interface for the site_settings table.
type SettingRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, key, value string) error
}

// SettingsServicer defines the interface for interacting with both
// configuration stores.
type SettingsServicer interface {
	SiteSettings(ctx context.Context) (map[string]string, error)
	UpdateSiteSettings(ctx context.Context, settings map[string]string) error
	PanelSettings() (json.RawMessage, error)
	SavePanelSettings(blob json.RawMessage) error
}

// panelSettingsKey is where the admin panel blob lives in the local cache.
const panelSettingsKey = "admin_panel_settings"

// SettingsService manages the two configuration stores.
//
// The site store (site_settings rows) feeds the public pages. The panel
// store is a JSON blob in the local SQLite cache that backs the admin
// settings screens. The two are deliberately never reconciled: saving the
// panel does not write site_settings and vice versa. That split reproduces
// the original system's behavior and is pinned down by tests.
type SettingsService struct {
	repo  SettingRepository
	cache *cache.Cache
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo SettingRepository, c *cache.Cache) *SettingsService {
	return &SettingsService{repo: repo, cache: c}
}

// SiteSettings returns the public site configuration map.
func (s *SettingsService) SiteSettings(ctx context.Context) (map[string]string, error) {
	return s.repo.GetAll(ctx)
}

// UpdateSiteSettings upserts the given keys into the site store. Keys not
// present in the map are left untouched.
func (s *SettingsService) UpdateSiteSettings(ctx context.Context, settings map[string]string) error {
	for key, value := range settings {
		if err := s.repo.Upsert(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

// PanelSettings loads the admin panel blob. A missing blob yields an empty
// document rather than an error.
func (s *SettingsService) PanelSettings() (json.RawMessage, error) {
	blob, err := s.cache.Get(panelSettingsKey)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(blob), nil
}

// SavePanelSettings stores the admin panel blob without expiry. It must be
// a valid JSON document; it is never propagated to the site store.
func (s *SettingsService) SavePanelSettings(blob json.RawMessage) error {
	if !json.Valid(blob) {
		return NewValidationError("settings payload must be valid JSON")
	}
	return s.cache.Set(panelSettingsKey, blob, 0)
}
