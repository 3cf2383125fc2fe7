package auth

import (
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/spndy/spndy-api/internal/config"
	"github.com/spndy/spndy-api/internal/database/users"
	"github.com/spndy/spndy-api/internal/entities"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailInvalid       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password is too short")
)

// UserStore is the credential persistence the service depends on.
// Implemented by database/users.Repository.
type UserStore interface {
	CreateUser(user *entities.User) error
	GetUserByEmail(email string) (*entities.User, error)
	GetUserByID(id uint) (*entities.User, error)
	EmailExists(email string) (bool, error)
	UpdatePassword(id uint, hashed string) error
}

// TokenPair is the result of a successful signup, login or refresh.
type TokenPair struct {
	Access  string
	Refresh string
}

// Service orchestrates signup, login, refresh and token validation over one
// identity. Stores and the token manager are constructor-injected so tests
// can substitute them.
type Service struct {
	users  UserStore
	tokens *TokenManager
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(users UserStore, tokens *TokenManager, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		config: cfg,
	}
}

// Signup validates the input, persists a new credential with a hashed
// password and issues both tokens.
func (s *Service) Signup(username, email, password string) (*entities.User, *TokenPair, error) {
	if username == "" {
		return nil, nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, nil, ErrEmailRequired
	}
	if password == "" {
		return nil, nil, ErrPasswordRequired
	}

	// Validate email format and length (RFC 5321 limit is 254)
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return nil, nil, ErrEmailInvalid
	}

	if len(password) < s.config.MinPasswordLength {
		return nil, nil, ErrPasswordTooShort
	}

	// Email alone is the identity key; usernames may repeat.
	exists, err := s.users.EmailExists(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailExists
	}

	hashed, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login authenticates by email and password and issues both tokens.
// Lookup failure and password mismatch both surface as
// ErrInvalidCredentials so callers cannot probe which emails exist.
func (s *Service) Login(email, password string) (*entities.User, *TokenPair, error) {
	if email == "" || password == "" {
		return nil, nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	matched, legacy := VerifyPassword(password, user.Password)
	if !matched {
		return nil, nil, ErrInvalidCredentials
	}

	// One-time migration: re-hash a legacy plaintext record on its first
	// successful login. A failure here must not fail the login itself.
	if legacy {
		if hashed, err := HashPassword(password, s.config.BcryptCost); err == nil {
			if err := s.users.UpdatePassword(user.ID, hashed); err != nil {
				log.Printf("Failed to upgrade legacy password for user %d: %v", user.ID, err)
			} else {
				user.Password = hashed
			}
		}
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh verifies a refresh token, confirms the account still exists and
// issues a fresh token pair (rotation: the caller overwrites the cookie).
func (s *Service) Refresh(refreshToken string) (*entities.User, *TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, nil, ErrInvalidToken
	}

	user, err := s.users.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Validate verifies an access token and confirms the account still exists.
func (s *Service) Validate(accessToken string) (*entities.User, error) {
	claims, err := s.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	user.Password = ""
	return user, nil
}

func (s *Service) issuePair(user *entities.User) (*TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}
