// ABOUTME: Expiring hash built on the expiring_hash SQLite table
// ABOUTME: Entries live for a TTL unless refreshed by the process that wrote them

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"
	"time"
)

// KeyToString renders a typed key as the string stored in the database.
type KeyToString[K any] func(K) string

// ScanCallback is invoked for each live entry. Returning done stops the scan.
type ScanCallback func(field string, value []byte) (done bool, err error)

// ExpiringHash is a set of named hashes whose fields expire after a TTL.
// Fields written through Set are remembered locally so Refresh can keep
// them alive; Forget drops that local record and lets the field expire.
type ExpiringHash[K1 any, K2 any] interface {
	Set(ctx context.Context, key K1, field K2, value []byte) error
	Unset(ctx context.Context, key K1, field K2) error
	Forget(key K1, field K2)
	Scan(ctx context.Context, key K1, cb ScanCallback) error
	Len(ctx context.Context, key K1) (int64, error)
	Refresh(ctx context.Context, nextRefresh time.Time) error
	GC() func(context.Context) (int, error)
}

type localEntry struct {
	value     []byte
	expiresAt time.Time
}

// SQLiteExpiringHash implements ExpiringHash on top of SQLiteStore.
// Every hash key is stored as prefix+keyToString(key), which lets GC stay
// within its own namespace of the shared table.
type SQLiteExpiringHash[K1 comparable, K2 comparable] struct {
	db          *sql.DB
	prefix      string
	keyToString KeyToString[K1]
	fieldToStr  KeyToString[K2]
	ttl         time.Duration
	now         func() time.Time

	mu   sync.Mutex
	data map[string]map[string]*localEntry // hash key -> field -> entry
}

var _ ExpiringHash[int64, int64] = (*SQLiteExpiringHash[int64, int64])(nil)

// NewExpiringHash creates an expiring hash backed by the store.
func NewExpiringHash[K1 comparable, K2 comparable](s *SQLiteStore, prefix string, keyToString KeyToString[K1], fieldToStr KeyToString[K2], ttl time.Duration) *SQLiteExpiringHash[K1, K2] {
	return &SQLiteExpiringHash[K1, K2]{
		db:          s.db,
		prefix:      prefix,
		keyToString: keyToString,
		fieldToStr:  fieldToStr,
		ttl:         ttl,
		now:         time.Now,
		data:        make(map[string]map[string]*localEntry),
	}
}

// Int64Key renders an int64 key in base 10.
func Int64Key(key int64) string {
	return strconv.FormatInt(key, 10)
}

func (h *SQLiteExpiringHash[K1, K2]) hashKey(key K1) string {
	return h.prefix + h.keyToString(key)
}

// Set writes the field with a fresh expiry and remembers it for Refresh.
func (h *SQLiteExpiringHash[K1, K2]) Set(ctx context.Context, key K1, field K2, value []byte) error {
	hashKey := h.hashKey(key)
	fieldStr := h.fieldToStr(field)
	expiresAt := h.now().Add(h.ttl)

	if err := upsertEntry(ctx, h.db, hashKey, fieldStr, value, expiresAt); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	fields, ok := h.data[hashKey]
	if !ok {
		fields = make(map[string]*localEntry)
		h.data[hashKey] = fields
	}
	fields[fieldStr] = &localEntry{value: value, expiresAt: expiresAt}
	return nil
}

// Unset deletes the field and forgets it.
func (h *SQLiteExpiringHash[K1, K2]) Unset(ctx context.Context, key K1, field K2) error {
	hashKey := h.hashKey(key)
	fieldStr := h.fieldToStr(field)

	h.forget(hashKey, fieldStr)

	_, err := h.db.ExecContext(ctx,
		`DELETE FROM expiring_hash WHERE hash_key = ? AND field = ?`,
		hashKey, fieldStr)
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", hashKey, fieldStr, err)
	}
	return nil
}

// Forget drops the local record only. The stored field expires on its own.
func (h *SQLiteExpiringHash[K1, K2]) Forget(key K1, field K2) {
	h.forget(h.hashKey(key), h.fieldToStr(field))
}

func (h *SQLiteExpiringHash[K1, K2]) forget(hashKey, field string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fields, ok := h.data[hashKey]
	if !ok {
		return
	}
	delete(fields, field)
	if len(fields) == 0 {
		delete(h.data, hashKey)
	}
}

type scannedEntry struct {
	field string
	value []byte
}

// Scan visits the live fields of key in the order they were first written.
// Rows are read before any callback runs so a slow callback never holds a connection.
func (h *SQLiteExpiringHash[K1, K2]) Scan(ctx context.Context, key K1, cb ScanCallback) error {
	hashKey := h.hashKey(key)
	rows, err := h.db.QueryContext(ctx,
		`SELECT field, value FROM expiring_hash
		 WHERE hash_key = ? AND expires_at > ?
		 ORDER BY rowid`,
		hashKey, h.now().UnixNano())
	if err != nil {
		return fmt.Errorf("scanning %s: %w", hashKey, err)
	}

	var entries []scannedEntry
	for rows.Next() {
		var e scannedEntry
		if err := rows.Scan(&e.field, &e.value); err != nil {
			rows.Close()
			return fmt.Errorf("reading %s: %w", hashKey, err)
		}
		entries = append(entries, e)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("iterating %s: %w", hashKey, err)
	}

	for _, e := range entries {
		done, err := cb(e.field, e.value)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return nil
}

// Len counts the live fields of key.
func (h *SQLiteExpiringHash[K1, K2]) Len(ctx context.Context, key K1) (int64, error) {
	hashKey := h.hashKey(key)
	var n int64
	err := h.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM expiring_hash WHERE hash_key = ? AND expires_at > ?`,
		hashKey, h.now().UnixNano()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", hashKey, err)
	}
	return n, nil
}

type refreshEntry struct {
	hashKey string
	field   string
	value   []byte
	entry   *localEntry
}

// Refresh rewrites every remembered field that would expire before nextRefresh.
func (h *SQLiteExpiringHash[K1, K2]) Refresh(ctx context.Context, nextRefresh time.Time) error {
	h.mu.Lock()
	var pending []refreshEntry
	for hashKey, fields := range h.data {
		for field, e := range fields {
			if e.expiresAt.Before(nextRefresh) {
				pending = append(pending, refreshEntry{hashKey: hashKey, field: field, value: e.value, entry: e})
			}
		}
	}
	h.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	expiresAt := h.now().Add(h.ttl)
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning refresh: %w", err)
	}
	for _, p := range pending {
		if err := upsertEntry(ctx, tx, p.hashKey, p.field, p.value, expiresAt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing refresh: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range pending {
		// Skip entries that were unset or overwritten while the transaction ran
		if h.data[p.hashKey][p.field] == p.entry {
			p.entry.expiresAt = expiresAt
		}
	}
	return nil
}

// GC returns a function that deletes expired fields in this hash's namespace
// and reports how many were removed.
func (h *SQLiteExpiringHash[K1, K2]) GC() func(context.Context) (int, error) {
	prefix := h.prefix
	now := h.now
	return func(ctx context.Context) (int, error) {
		res, err := h.db.ExecContext(ctx,
			`DELETE FROM expiring_hash WHERE expires_at <= ? AND substr(hash_key, 1, ?) = ?`,
			now().UnixNano(), len(prefix), prefix)
		if err != nil {
			return 0, fmt.Errorf("deleting expired entries under %q: %w", prefix, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("counting expired entries under %q: %w", prefix, err)
		}
		return int(n), nil
	}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertEntry(ctx context.Context, db execer, hashKey, field string, value []byte, expiresAt time.Time) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO expiring_hash (hash_key, field, value, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(hash_key, field) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at
	`, hashKey, field, value, expiresAt.UnixNano())
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", hashKey, field, err)
	}
	return nil
}
