// Package settings is the persistent key/value store consumed by the
// cleaning pipeline's call boundary. Keys are opaque strings; the store,
// not the pipeline, owns the default for each key.
package settings

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// The three boolean keys the subject cleaner reads.
const (
	KeyTranslatePrefixes    = "subject.translate_prefixes"
	KeyOnlyOnePrefix        = "subject.only_one_prefix"
	KeyKeepOriginalLanguage = "subject.keep_original_language"
)

var defaults = map[string]bool{
	KeyTranslatePrefixes:    true,
	KeyOnlyOnePrefix:        false,
	KeyKeepOriginalLanguage: false,
}

// KnownKey reports whether key is one of the settings the cleaner consumes.
func KnownKey(key string) bool {
	_, ok := defaults[key]
	return ok
}

// Default returns the store-owned default for a known key.
func Default(key string) (bool, bool) {
	v, ok := defaults[key]
	return v, ok
}

// Store manages the settings SQLite table.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// settings table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS settings (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create settings table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetBool returns the stored value for key, or the store default when the
// key is unset or holds an unparsable value.
func (s *Store) GetBool(key string) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	switch {
	case err == sql.ErrNoRows:
		return defaults[key], nil
	case err != nil:
		return defaults[key], fmt.Errorf("get %s: %w", key, err)
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaults[key], nil
	}
	return v, nil
}

// SetBool stores a boolean value for key.
func (s *Store) SetBool(key string, v bool) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, strconv.FormatBool(v), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Remove deletes a key, reverting it to the store default.
func (s *Store) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Policy is the resolved snapshot of the three cleaner settings.
type Policy struct {
	TranslatePrefixes    bool
	OnlyOnePrefix        bool
	KeepOriginalLanguage bool
}

// Policy reads all three cleaner settings in one call.
func (s *Store) Policy() (Policy, error) {
	var p Policy
	var err error
	if p.TranslatePrefixes, err = s.GetBool(KeyTranslatePrefixes); err != nil {
		return p, err
	}
	if p.OnlyOnePrefix, err = s.GetBool(KeyOnlyOnePrefix); err != nil {
		return p, err
	}
	if p.KeepOriginalLanguage, err = s.GetBool(KeyKeepOriginalLanguage); err != nil {
		return p, err
	}
	return p, nil
}
