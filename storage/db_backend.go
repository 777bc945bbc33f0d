package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrewpaige1/nodebook-local/models"
)

// DBBackend keeps slots as rows of the slots table, one row per key.
type DBBackend struct {
	db *gorm.DB
}

// NewDBBackend migrates the slots table and returns a backend over db.
func NewDBBackend(db *gorm.DB) (*DBBackend, error) {
	if err := db.AutoMigrate(&models.Slot{}); err != nil {
		return nil, err
	}
	return &DBBackend{db: db}, nil
}

func (b *DBBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var slot models.Slot
	err := b.db.WithContext(ctx).Where("slot = ?", key).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return slot.Value, true, nil
}

func (b *DBBackend) Set(ctx context.Context, key, value string) error {
	slot := models.Slot{Key: key, Value: value}
	return b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
}

func (b *DBBackend) Remove(ctx context.Context, key string) error {
	return b.db.WithContext(ctx).Where("slot = ?", key).Delete(&models.Slot{}).Error
}
