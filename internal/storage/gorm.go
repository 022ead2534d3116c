package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bus_ledger/internal/models"
)

// GormStore keeps blobs in the blobs table of a gorm-managed database (PostgreSQL).
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the blobs table and returns a store on db.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.Blob{}); err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var blob models.Blob
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load blob %s: %w", key, err)
	}
	return blob.Data, true, nil
}

func (s *GormStore) Save(ctx context.Context, blobs ...Blob) error {
	if err := validate(blobs); err != nil {
		return err
	}

	now := time.Now().UTC()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range blobs {
			row := models.Blob{Key: b.Key, Data: b.Data, UpdatedAt: now}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("save blob %s: %w", b.Key, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"component": "storage", "backend": "postgres", "blobs": len(blobs)}).
		Debug("blobs saved")
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
