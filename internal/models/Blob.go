// internal/models/blob.go
package models

import "time"

// Blob is one named, wholesale-overwritten collection document.
type Blob struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Data      []byte    `gorm:"not null" json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Blob) TableName() string { return "blobs" }
