//go:build unit

package service

import (
	"context"
	"encoding/json"
	"testing"
)

func TestSiteSettingsRoundTrip(t *testing.T) {
	repo := &mockSettingRepository{settings: map[string]string{"site_name": "Daily Wire"}}
	c, teardown := newTestCache(t)
	defer teardown()
	svc := NewSettingsService(repo, c)

	if err := svc.UpdateSiteSettings(context.Background(), map[string]string{
		"site_name": "Daily Ledger",
		"tagline":   "News that matters",
	}); err != nil {
		t.Fatalf("UpdateSiteSettings returned error: %v", err)
	}

	settings, err := svc.SiteSettings(context.Background())
	if err != nil {
		t.Fatalf("SiteSettings returned error: %v", err)
	}
	if settings["site_name"] != "Daily Ledger" || settings["tagline"] != "News that matters" {
		t.Errorf("settings = %v", settings)
	}
	if repo.upsertCalled != 2 {
		t.Errorf("Upsert called %d times, want 2", repo.upsertCalled)
	}
}

func TestPanelSettingsMissingBlob(t *testing.T) {
	c, teardown := newTestCache(t)
	defer teardown()
	svc := NewSettingsService(&mockSettingRepository{}, c)

	blob, err := svc.PanelSettings()
	if err != nil {
		t.Fatalf("PanelSettings returned error: %v", err)
	}
	if string(blob) != "{}" {
		t.Errorf("missing blob should read as {}, got %q", blob)
	}
}

func TestPanelSettingsRoundTrip(t *testing.T) {
	c, teardown := newTestCache(t)
	defer teardown()
	svc := NewSettingsService(&mockSettingRepository{}, c)

	payload := json.RawMessage(`{"theme":"dark","per_page":20}`)
	if err := svc.SavePanelSettings(payload); err != nil {
		t.Fatalf("SavePanelSettings returned error: %v", err)
	}

	blob, err := svc.PanelSettings()
	if err != nil {
		t.Fatalf("PanelSettings returned error: %v", err)
	}
	if string(blob) != string(payload) {
		t.Errorf("blob = %q, want %q", blob, payload)
	}
}

func TestSavePanelSettingsRejectsInvalidJSON(t *testing.T) {
	c, teardown := newTestCache(t)
	defer teardown()
	svc := NewSettingsService(&mockSettingRepository{}, c)

	err := svc.SavePanelSettings(json.RawMessage(`{"theme":`))
	if err == nil || !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// The panel store and the site store are deliberately separate; writing one
// must never show up in the other.
func TestSettingsStoresDoNotSync(t *testing.T) {
	repo := &mockSettingRepository{}
	c, teardown := newTestCache(t)
	defer teardown()
	svc := NewSettingsService(repo, c)

	if err := svc.SavePanelSettings(json.RawMessage(`{"site_name":"Panel Name"}`)); err != nil {
		t.Fatalf("SavePanelSettings returned error: %v", err)
	}
	if repo.upsertCalled != 0 {
		t.Error("panel writes must not touch the site store")
	}

	if err := svc.UpdateSiteSettings(context.Background(), map[string]string{"site_name": "Site Name"}); err != nil {
		t.Fatalf("UpdateSiteSettings returned error: %v", err)
	}
	blob, err := svc.PanelSettings()
	if err != nil {
		t.Fatalf("PanelSettings returned error: %v", err)
	}
	if string(blob) != `{"site_name":"Panel Name"}` {
		t.Errorf("site writes must not touch the panel blob, got %q", blob)
	}
}
