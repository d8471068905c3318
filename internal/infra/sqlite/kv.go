package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
)

// ─── Journal Key-Value ──────────────────────────────────────────────────────

// Set stores a key-value pair, replacing any existing value.
func (d *DB) Set(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO journal (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// Get retrieves a value by key.
// Returns "" if key not found.
func (d *DB) Get(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM journal WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// GetMulti retrieves several keys at once. Absent keys are omitted from the
// result map.
func (d *DB) GetMulti(keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	placeholders := strings.Repeat("?,", len(keys)-1) + "?"
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	rows, err := d.db.Query(
		fmt.Sprintf(`SELECT key, value FROM journal WHERE key IN (%s)`, placeholders),
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

// Delete removes the given keys in a single transaction.
// Missing keys are ignored.
func (d *DB) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, k := range keys {
		if _, err := tx.Exec(`DELETE FROM journal WHERE key = ?`, k); err != nil {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	return tx.Commit()
}

// Keys returns every key in the journal.
func (d *DB) Keys() ([]string, error) {
	rows, err := d.db.Query(`SELECT key FROM journal ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
