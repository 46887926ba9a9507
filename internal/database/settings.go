package database

import (
	"context"
	"database/sql"
	"errors"
)

// GetSetting reads key. A missing key or NULL value reports ok=false with a
// nil error; read failures are returned.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	var value *string
	err := d.DB.QueryRowxContext(ctx, d.DB.Rebind("SELECT value FROM settings WHERE key = ?"), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr(EntitySetting, "get", 0, err)
	}
	if value == nil {
		return "", false, nil
	}
	return *value, true, nil
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	_, err := d.DB.ExecContext(ctx, d.DB.Rebind(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value"),
		key, value)
	return wrapErr(EntitySetting, "set", 0, err)
}

// DeleteSetting clears key; deleting an absent key is not an error.
func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	_, err := d.DB.ExecContext(ctx, d.DB.Rebind("DELETE FROM settings WHERE key = ?"), key)
	return wrapErr(EntitySetting, "delete", 0, err)
}
