package services

import (
	"context"
	"crypto/subtle"
	stderrors "errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/galapremios/galavote/internal/errors"
	"github.com/galapremios/galavote/internal/logger"
	"github.com/galapremios/galavote/internal/models"
	"github.com/galapremios/galavote/internal/repository"
)

// UserService handles the login-timestamp operation
type UserService struct {
	log  logger.Logger
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(log logger.Logger, repo repository.UserRepository) *UserService {
	return &UserService{
		log:  log,
		repo: repo,
	}
}

// UpdateLastLogin verifies the credentials and stamps the user's last
// login with the current time. The username is trimmed before lookup.
func (s *UserService) UpdateLastLogin(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errors.InvalidInput("username and password are required")
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundf("user %s not found", username)
		}
		return nil, err
	}

	if !verifyPassword(user.Password, password) {
		return nil, errors.Unauthorized("invalid username or password")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NotFoundf("user %s not found", username)
		}
		return nil, err
	}

	user.LastLogin = now
	s.log.Info("Login timestamp updated", "user", user.Username)
	return user, nil
}

// verifyPassword checks a password against the stored value. Bcrypt hashes
// are preferred; rows migrated from the old store may still hold plaintext,
// which is compared in constant time.
func verifyPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
