package db

import (
	"database/sql"
	"fmt"
	"time"
)

// CachedResponse returns the cached body for url if one exists and is
// younger than maxAge. A maxAge of zero disables cache reads.
func (db *DB) CachedResponse(url string, maxAge time.Duration) ([]byte, bool, error) {
	if maxAge <= 0 {
		return nil, false, nil
	}

	var body []byte
	var fetchedAt time.Time
	err := db.QueryRow(`
		SELECT body, fetched_at
		FROM response_cache
		WHERE url = ?
	`, url).Scan(&body, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	if time.Since(fetchedAt) > maxAge {
		return nil, false, nil
	}
	return body, true, nil
}

// StoreResponse upserts the raw body for url with the current timestamp.
func (db *DB) StoreResponse(url string, body []byte) error {
	_, err := db.Exec(`
		INSERT INTO response_cache (url, body, fetched_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(url) DO UPDATE SET
			body = excluded.body,
			fetched_at = excluded.fetched_at
	`, url, body)
	if err != nil {
		return fmt.Errorf("failed to store response: %w", err)
	}
	return nil
}
