package db

import (
	"fmt"
	"time"
)

// LookupRecord is one row of lookup history.
type LookupRecord struct {
	LookupID  int64
	Word      string
	Lang      string
	Variant   string
	CreatedAt time.Time
}

// RecordLookup appends one successful lookup to the history.
func (db *DB) RecordLookup(word, lang, variant string) error {
	_, err := db.Exec(`
		INSERT INTO lookups (word, lang, variant)
		VALUES (?, ?, ?)
	`, word, lang, variant)
	if err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// RecentLookups returns up to limit history rows, newest first.
func (db *DB) RecentLookups(limit int) ([]LookupRecord, error) {
	rows, err := db.Query(`
		SELECT lookup_id, word, lang, variant, created_at
		FROM lookups
		ORDER BY created_at DESC, lookup_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookups: %w", err)
	}
	defer rows.Close()

	var records []LookupRecord
	for rows.Next() {
		var r LookupRecord
		if err := rows.Scan(&r.LookupID, &r.Word, &r.Lang, &r.Variant, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lookup row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
