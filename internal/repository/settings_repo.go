package repository

import (
	"database/sql"

	"github.com/touchpoint-ai/touchpoint/internal/domain"
)

// Settings keys
const (
	settingLanguage     = "language"
	settingCurrency     = "currency"
	settingSubscription = "subscription"
)

// SettingsRepository handles workspace settings persistence
type SettingsRepository struct {
	db *DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves the workspace settings, falling back to defaults for any
// key never written.
func (r *SettingsRepository) Get() (domain.WorkspaceSettings, error) {
	settings := domain.DefaultWorkspaceSettings()

	rows, err := r.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return settings, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, err
		}
		switch key {
		case settingLanguage:
			settings.Language = value
		case settingCurrency:
			settings.Currency = value
		case settingSubscription:
			settings.Subscription = value
		}
	}

	return settings, rows.Err()
}

// Put stores the workspace settings
func (r *SettingsRepository) Put(settings domain.WorkspaceSettings) error {
	pairs := map[string]string{
		settingLanguage:     settings.Language,
		settingCurrency:     settings.Currency,
		settingSubscription: settings.Subscription,
	}

	for key, value := range pairs {
		if err := r.put(key, value); err != nil {
			return err
		}
	}

	return nil
}

func (r *SettingsRepository) put(key, value string) error {
	var err error
	var existing string

	getErr := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&existing)
	if getErr == sql.ErrNoRows {
		_, err = r.db.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)`, key, value)
	} else if getErr != nil {
		return getErr
	} else {
		_, err = r.db.Exec(`UPDATE settings SET value = ? WHERE key = ?`, value, key)
	}

	return err
}
