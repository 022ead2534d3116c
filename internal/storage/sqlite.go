package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps blobs in a single-file SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// single writer, matches the ledger's serialised mutations
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM blobs WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load blob %s: %w", key, err)
	}
	return data, true, nil
}

func (s *SQLiteStore) Save(ctx context.Context, blobs ...Blob) error {
	if err := validate(blobs); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, b := range blobs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
			b.Key, b.Data, now)
		if err != nil {
			return fmt.Errorf("save blob %s: %w", b.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit blobs: %w", err)
	}

	logrus.WithFields(logrus.Fields{"component": "storage", "backend": "sqlite", "blobs": len(blobs)}).
		Debug("blobs saved")
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
