package service

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"linguaquest/internal/apperr"
	"linguaquest/internal/models"
	"linguaquest/internal/security"
)

// UserStore provides the account operations the auth service needs.
type UserStore interface {
	Create(email, name, passwordHash string) (int64, error)
	FindByEmail(email string) (*models.User, error)
	FindByID(userID int64) (*models.User, error)
	UpdateLevel(userID int64, level models.Level) error
}

// AuthService handles registration, login and token issuance.
type AuthService struct {
	users  UserStore
	tokens *security.TokenManager
	logger *zap.Logger
}

// NewAuthService creates the auth service.
func NewAuthService(users UserStore, tokens *security.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates a new account and returns it with a fresh token.
func (s *AuthService) Register(email, name, password string) (*models.User, string, error) {
	email = Normalize(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", apperr.Validation("email", "a valid email is required")
	}
	if len(password) < 8 {
		return nil, "", apperr.Validation("password", "password must be at least 8 characters")
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", apperr.DataAccess("find user", err)
	}
	if existing != nil {
		return nil, "", apperr.Validation("email", "email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.DataAccess("hash password", err)
	}

	id, err := s.users.Create(email, name, string(hash))
	if err != nil {
		return nil, "", apperr.DataAccess("create user", err)
	}

	token, err := s.tokens.Issue(id)
	if err != nil {
		return nil, "", apperr.DataAccess("issue token", err)
	}

	s.logger.Info("user registered", zap.Int64("user_id", id))

	return &models.User{ID: id, Email: email, Name: name, Level: models.LevelBeginner}, token, nil
}

// Login verifies credentials and returns the account with a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(Normalize(email))
	if err != nil {
		return nil, "", apperr.DataAccess("find user", err)
	}
	if user == nil {
		return nil, "", &apperr.AuthorizationError{Message: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", &apperr.AuthorizationError{Message: "invalid credentials"}
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperr.DataAccess("issue token", err)
	}

	return user, token, nil
}

// SetLevel records the user's self-assessed proficiency level.
func (s *AuthService) SetLevel(userID int64, level string) error {
	parsed, ok := models.ParseLevel(level)
	if !ok {
		return apperr.Validation("level", "level must be beginner, intermediate or advanced")
	}
	if err := s.users.UpdateLevel(userID, parsed); err != nil {
		return apperr.DataAccess("update user level", err)
	}
	return nil
}

// GetUser retrieves an account by identity.
func (s *AuthService) GetUser(userID int64) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, apperr.DataAccess("find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", "")
	}
	return user, nil
}
