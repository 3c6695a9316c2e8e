package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/tablekeeper/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of every access token this API accepts, whether issued by login or by the OAuth2 token endpoint
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	Scope  string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *TokenIssuer) TTL() time.Duration { return i.ttl }

// Issue returns a signed token for user and its expiry
func (i *TokenIssuer) Issue(user *models.User) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies signature and expiry and returns the claims
func (i *TokenIssuer) Parse(token string) (*Claims, error) {
	return ParseToken(token, i.secret)
}

// ParseToken verifies a token signed with secret. Only HMAC signatures are accepted.
func ParseToken(token string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithIssuedAt())
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.UserID == "" {
		return nil, errors.New("token missing required 'uid' claim")
	}
	if !models.ValidRole(claims.Role) {
		return nil, fmt.Errorf("invalid role '%s'", claims.Role)
	}
	return claims, nil
}
