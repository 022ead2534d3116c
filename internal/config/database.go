package config

import (
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bus_ledger/internal/logger"
	"bus_ledger/internal/storage"
)

// OpenStore opens the blob store selected by DataBackend.
func OpenStore(cfg *Config) (storage.BlobStore, error) {
	log := logrus.WithFields(logrus.Fields{"component": "config", "backend": cfg.DataBackend})

	switch cfg.DataBackend {
	case BackendMemory:
		log.Warn("memory backend: data is lost on restart")
		return storage.NewMemoryStore(), nil

	case BackendSQLite:
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.WithField("path", cfg.SQLiteDBPath).Info("sqlite store ready")
		return store, nil

	case BackendPostgres:
		// DriverName "postgres" goes through lib/pq, "pgx" through pgx's stdlib driver.
		db, err := gorm.Open(postgres.New(postgres.Config{
			DriverName: cfg.DBDriver,
			DSN:        cfg.DSN(),
		}), &gorm.Config{Logger: logger.GormLogger()})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store, err := storage.NewGormStore(db)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"host": cfg.DBHost, "db": cfg.DBName, "driver": cfg.DBDriver}).
			Info("postgres store ready")
		return store, nil
	}

	return nil, fmt.Errorf("unknown data backend %q", cfg.DataBackend)
}
