package service

import (
	"context"
	"strings"
	"time"

	"github.com/yatube/api/internal/model"
	"github.com/yatube/api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	RecordLogin(ctx context.Context, id string) error
}

// TokenSigner signs session claims into a token string
type TokenSigner interface {
	Sign(claims jwt.Claims) (string, error)
	GetExpiration() time.Duration
}

// AuthService handles signup, login and session token issuance
type AuthService struct {
	userRepo UserRepository
	signer   TokenSigner
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo UserRepository
	Signer   TokenSigner
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo: cfg.UserRepo,
		signer:   cfg.Signer,
	}
}

// AuthResult represents a successful signup or login
type AuthResult struct {
	User      *model.User
	Token     string
	ExpiresIn time.Duration
}

// Signup creates a new user account with username/password
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (*AuthResult, error) {
	username := strings.TrimSpace(req.Username)
	if !isValidUsername(username) {
		return nil, ErrInvalidUsername
	}

	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Hash:     &hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login authenticates a user with username/password
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*AuthResult, error) {
	username := strings.TrimSpace(req.Username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if user.Hash == nil || *user.Hash == "" {
		return nil, ErrInvalidCredentials
	}

	if !checkPassword(req.Password, *user.Hash) {
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.RecordLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) issueToken(user *model.User) (*AuthResult, error) {
	token, err := s.signer.Sign(jwt.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: s.signer.GetExpiration(),
	}, nil
}

// Helper functions

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < model.MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > model.MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func isValidUsername(username string) bool {
	if len(username) < model.MinUsernameLength || len(username) > model.MaxUsernameLength {
		return false
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return true
}
