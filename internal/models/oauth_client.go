package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// OAuthClient is a machine client (kiosk, delivery partner) acting on behalf of its owning user
type OAuthClient struct {
	ID         string    `gorm:"primaryKey;size:64" json:"client_id"`
	Secret     string    `gorm:"not null" json:"-"`
	Name       string    `gorm:"not null" json:"name"`
	Domain     string    `json:"domain,omitempty"`
	UserID     string    `gorm:"size:36;index;not null" json:"user_id"`
	Scopes     string    `json:"scopes"`      // Space-separated list of allowed scopes
	GrantTypes string    `json:"grant_types"` // Space-separated list, currently only client_credentials
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

// The methods below satisfy oauth2.ClientInfo and oauth2.ClientPasswordVerifier.

func (c *OAuthClient) GetID() string     { return c.ID }
func (c *OAuthClient) GetSecret() string { return c.Secret }
func (c *OAuthClient) GetDomain() string { return c.Domain }
func (c *OAuthClient) IsPublic() bool    { return false }
func (c *OAuthClient) GetUserID() string { return c.UserID }

// VerifyPassword checks a presented secret against the stored bcrypt hash
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
