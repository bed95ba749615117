package sqlite

import (
	"context"
	"database/sql"
	"time"

	"tubescribe/errors"
)

const (
	getSettingQuery = `SELECT value FROM settings WHERE key = ?`

	upsertSettingQuery = `
        INSERT INTO settings (key, value, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET
            value = excluded.value,
            updated_at = excluded.updated_at
    `
)

type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	const op = "SettingsRepository.Get"

	var value string
	err := r.db.QueryRowContext(ctx, getSettingQuery, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", errors.NotFound(op, nil, "Setting not found")
	}
	if err != nil {
		return "", errors.Internal(op, err, "Failed to query setting")
	}

	return value, nil
}

func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	const op = "SettingsRepository.Set"

	for i := 0; i < 3; i++ { // Simple retry logic
		_, err := r.db.ExecContext(ctx, upsertSettingQuery, key, value, time.Now())
		if err == nil {
			return nil
		}
		if !isLockError(err) {
			return errors.Internal(op, err, "Failed to save setting")
		}
		time.Sleep(time.Second * time.Duration(i+1))
	}

	return errors.Internal(op, nil, "Failed after retries")
}
