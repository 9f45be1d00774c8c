package kv

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-marketplace/internal/domain/store"
	"github.com/BruksfildServices01/petcare-marketplace/internal/models"
)

// undefined_table: the kv_entries migration has not run yet.
const pgUndefinedTable = "42P01"

// GormStore keeps one kv_entries row per key.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// --------------------------------------------------
// Load
// --------------------------------------------------

func (s *GormStore) Load(ctx context.Context, key string) (string, bool, error) {
	var entries []models.KVEntry

	err := s.db.WithContext(ctx).
		Raw(`SELECT key, value, updated_at FROM kv_entries WHERE key = ? LIMIT 1`, key).
		Scan(&entries).Error
	if err != nil {
		if isUndefinedTable(err) {
			log.Printf("kv_entries missing while loading %s, treating as absent", key)
			return "", false, nil
		}
		return "", false, fmt.Errorf("load %s: %w", key, err)
	}

	if len(entries) == 0 {
		return "", false, nil
	}
	return entries[0].Value, true, nil
}

// --------------------------------------------------
// Save (upsert)
// --------------------------------------------------

func (s *GormStore) Save(ctx context.Context, key string, value string) error {
	err := s.db.WithContext(ctx).Exec(
		`INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, NOW()) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value,
	).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// --------------------------------------------------
// Clear
// --------------------------------------------------

func (s *GormStore) Clear(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Exec(
		`DELETE FROM kv_entries WHERE key = ?`,
		key,
	).Error
	if err != nil && !isUndefinedTable(err) {
		return fmt.Errorf("clear %s: %w", key, err)
	}
	return nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable
	}
	return false
}

// Compile-time check
var _ store.KV = (*GormStore)(nil)
