package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/spndy/spndy-api/internal/config"
	"github.com/spndy/spndy-api/internal/entities"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, wrong signing method, malformed payload or past expiry.
// Callers never learn which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity assertions embedded in both token types.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenManager issues and verifies access and refresh tokens. The two types
// are signed with distinct secrets so a leaked access secret cannot forge
// refresh tokens, and vice versa.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager creates a token manager from auth configuration.
func NewTokenManager(cfg config.Auth) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
	}
}

// IssueAccessToken mints a short-lived access token for the user.
func (m *TokenManager) IssueAccessToken(user *entities.User) (string, error) {
	return m.issue(user, m.accessSecret, m.accessTTL)
}

// IssueRefreshToken mints a long-lived refresh token for the user.
func (m *TokenManager) IssueRefreshToken(user *entities.User) (string, error) {
	return m.issue(user, m.refreshSecret, m.refreshTTL)
}

// VerifyAccessToken validates an access token and recovers its claims.
func (m *TokenManager) VerifyAccessToken(token string) (*Claims, error) {
	return m.verify(token, m.accessSecret)
}

// VerifyRefreshToken validates a refresh token and recovers its claims.
func (m *TokenManager) VerifyRefreshToken(token string) (*Claims, error) {
	return m.verify(token, m.refreshSecret)
}

func (m *TokenManager) issue(user *entities.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	return token.SignedString(secret)
}

// verify fails closed: every parse or validation failure collapses into
// ErrInvalidToken.
func (m *TokenManager) verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
