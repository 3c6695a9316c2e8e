package models

import (
	"time"
)

type OAuthToken struct {
	ID           uint    `gorm:"primaryKey"`
	ClientID     string  `gorm:"not null;index"`
	UserID       string  `gorm:"size:36"`
	AccessToken  string  `gorm:"uniqueIndex;not null"`
	RefreshToken *string // Nullable, client credentials never get one
	Scopes       string
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
