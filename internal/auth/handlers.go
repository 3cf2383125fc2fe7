package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spndy/spndy-api/internal/config"
)

// RefreshCookieName is the cookie carrying the refresh token.
const RefreshCookieName = "refreshToken"

// Controller handles the authentication HTTP endpoints.
type Controller struct {
	service *Service
	config  config.Auth
}

// NewController creates a new authentication controller.
func NewController(service *Service, cfg config.Auth) *Controller {
	return &Controller{service: service, config: cfg}
}

// RegisterRoutes registers the auth endpoints on the given group.
func (ac *Controller) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", ac.Signup)
	rg.POST("/login", ac.Login)
	rg.POST("/refresh", ac.Refresh)
	rg.POST("/validate", ac.Validate)
	rg.POST("/logout", ac.Logout)
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionResponse is returned by signup and login.
type sessionResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// Signup registers a new user and opens a session.
// POST /api/auth/signup
func (ac *Controller) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, pair, err := ac.service.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		case errors.Is(err, ErrUsernameRequired),
			errors.Is(err, ErrEmailRequired),
			errors.Is(err, ErrPasswordRequired),
			errors.Is(err, ErrEmailInvalid),
			errors.Is(err, ErrPasswordTooShort),
			errors.Is(err, ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ac.serverError(c, err, "signup")
		}
		return
	}

	ac.setRefreshCookie(c, pair.Refresh)
	c.JSON(http.StatusCreated, sessionResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    pair.Access,
	})
}

// Login authenticates an existing user and opens a session.
// POST /api/auth/login
func (ac *Controller) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, pair, err := ac.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			// Uniform message whether or not the email exists.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		ac.serverError(c, err, "login")
		return
	}

	ac.setRefreshCookie(c, pair.Refresh)
	c.JSON(http.StatusOK, sessionResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    pair.Access,
	})
}

// Refresh rotates the token pair from the refresh cookie.
// POST /api/auth/refresh
func (ac *Controller) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No refresh token"})
		return
	}

	user, pair, err := ac.service.Refresh(refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken):
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired refresh token"})
		case errors.Is(err, ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			ac.serverError(c, err, "refresh")
		}
		return
	}

	ac.setRefreshCookie(c, pair.Refresh)
	c.JSON(http.StatusOK, gin.H{
		"token": pair.Access,
		"user":  user.Public(),
	})
}

// Validate confirms the bearer access token still maps to a live account.
// POST /api/auth/validate
func (ac *Controller) Validate(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
		return
	}

	user, err := ac.service.Validate(token)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
		case errors.Is(err, ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			ac.serverError(c, err, "validate")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  user.Public(),
	})
}

// Logout clears the refresh cookie. Idempotent; always succeeds.
// POST /api/auth/logout
func (ac *Controller) Logout(c *gin.Context) {
	ac.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (ac *Controller) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(RefreshCookieName, token, int(ac.config.RefreshTokenTTL.Seconds()), "/", "", ac.config.SecureCookies, true)
}

func (ac *Controller) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(RefreshCookieName, "", -1, "/", "", ac.config.SecureCookies, true)
}

// serverError logs the cause and answers with a generic message; internal
// detail never reaches the client.
func (ac *Controller) serverError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
}
