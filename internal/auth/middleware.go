package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spndy/spndy-api/internal/entities"
)

// Context keys for the authenticated identity
const (
	ContextKeyUserID   = "auth_user_id"
	ContextKeyUsername = "auth_username"
	ContextKeyEmail    = "auth_email"
	ContextKeyUser     = "auth_user"
)

// Middleware authenticates requests from the Authorization header.
type Middleware struct {
	tokens *TokenManager
	users  UserStore
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(tokens *TokenManager, users UserStore) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// RequireAuth rejects requests without a valid bearer access token. A valid
// token whose account has since been deleted is rejected too, so downstream
// handlers always observe a live identity.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Not authorized, no token",
			})
			return
		}

		user, ok := m.resolve(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Not authorized, token failed",
			})
			return
		}

		setUserContext(c, user)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid bearer token is present
// and lets anonymous requests through untouched. Used by report routes that
// serve both scoped and unscoped aggregates.
func (m *Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if user, ok := m.resolve(token); ok {
				setUserContext(c, user)
			}
		}
		c.Next()
	}
}

// resolve verifies the token and re-fetches the credential so deleted
// accounts lose access immediately.
func (m *Middleware) resolve(token string) (*entities.User, bool) {
	claims, err := m.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, false
	}
	user, err := m.users.GetUserByID(claims.UserID)
	if err != nil {
		return nil, false
	}
	user.Password = ""
	return user, true
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setUserContext(c *gin.Context, user *entities.User) {
	c.Set(ContextKeyUserID, user.ID)
	c.Set(ContextKeyUsername, user.Username)
	c.Set(ContextKeyEmail, user.Email)
	c.Set(ContextKeyUser, user)
}

// Helper functions to extract auth data from Gin context

// GetUserID retrieves the authenticated user's ID from the context.
// Returns 0 when the request is anonymous.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// GetUsername retrieves the authenticated user's username from the context.
func GetUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		if username, ok := name.(string); ok {
			return username
		}
	}
	return ""
}

// GetUser retrieves the full authenticated user from the context, or nil.
func GetUser(c *gin.Context) *entities.User {
	if u, exists := c.Get(ContextKeyUser); exists {
		if user, ok := u.(*entities.User); ok {
			return user
		}
	}
	return nil
}

// IsAuthenticated returns true if the request carries a resolved identity.
func IsAuthenticated(c *gin.Context) bool {
	return GetUserID(c) != 0
}
