package models

import "time"

// Slot is one durable key-value entry when the store is backed by a SQL database.
type Slot struct {
	Key       string    `gorm:"column:slot;primaryKey;size:100"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
