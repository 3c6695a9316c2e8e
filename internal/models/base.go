package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the opaque identifier shared by every stored record
type Base struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
}

// BeforeCreate assigns a fresh identifier when the caller did not provide one
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
