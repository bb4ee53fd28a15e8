package data

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SettingRepository handles the site_settings key-value table consumed by
// the public site.
type SettingRepository struct {
	DB *sqlx.DB
}

// NewSettingRepository creates a new SettingRepository.
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{DB: db}
}

// GetAll returns every setting row as a flat map.
func (r *SettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []Setting
	if err := r.DB.SelectContext(ctx, &rows, "SELECT key, value FROM site_settings"); err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// Upsert writes one setting row, inserting or replacing by key.
func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	query := `INSERT INTO site_settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := r.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", key, err)
	}
	return nil
}
