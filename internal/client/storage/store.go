// Package storage implements the persisted session store: a small key/value
// table in a local SQLite file, the terminal analog of browser local
// storage. It holds the bearer token, the serialized user, the UI theme and
// the welcome-banner flag; any other key is removed at startup.
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Well-known keys.
const (
	KeyToken             = "token"
	KeyUser              = "user"
	KeyTheme             = "theme"
	KeyWelcomeBannerSeen = "hasSeenWelcomeBanner"
)

// AllowedKeys is the startup allow-list: Prune deletes every key outside
// this set.
var AllowedKeys = map[string]struct{}{
	KeyToken:             {},
	KeyUser:              {},
	KeyTheme:             {},
	KeyWelcomeBannerSeen: {},
}

// Store is the SQLite-backed settings store.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the value for key. The second result reports whether the key
// was present; an absent key is not an error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get settings[%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set settings[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete settings[%s]: %w", key, err)
	}
	return nil
}

// Keys lists every stored key.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan settings row: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settings rows: %w", err)
	}
	return keys, nil
}

// Token returns the stored bearer token. Store satisfies the API client's
// TokenSource through this method.
func (s *Store) Token(ctx context.Context) (string, bool, error) {
	return s.Get(ctx, KeyToken)
}

// SetSession writes the token and serialized user in a single transaction.
// The two values are always written together so a failure cannot leave a
// token without a matching user, or vice versa.
func (s *Store) SetSession(ctx context.Context, token, userJSON string) error {
	return withTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		for _, kv := range [][2]string{{KeyToken, token}, {KeyUser, userJSON}} {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO settings (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, kv[0], kv[1]); err != nil {
				return fmt.Errorf("failed to set settings[%s]: %w", kv[0], err)
			}
		}
		return nil
	})
}

// ClearSession removes the token and user atomically.
func (s *Store) ClearSession(ctx context.Context) error {
	return withTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM settings WHERE key IN (?, ?)`, KeyToken, KeyUser)
		if err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	})
}

// Prune removes every key outside the allow-list. Individual delete errors
// abort the cleanup; the store is left with whatever survived.
func (s *Store) Prune(ctx context.Context) error {
	keys, err := s.Keys(ctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if _, ok := AllowedKeys[key]; ok {
			continue
		}
		if err := s.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
