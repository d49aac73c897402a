package services

import (
	"errors"
	"strings"

	"trackfitnessgoals/backend/app/models"
	"trackfitnessgoals/backend/app/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// Signup validates and creates a user. The duplicate pre-checks give specific
// conflict messages; the unique indexes remain the final arbiter, so a lost
// race on insert still comes back as a conflict.
func (s *UserService) Signup(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, invalid("All fields are required")
	}
	if !validEmail(email) {
		return nil, invalid("Invalid email format")
	}
	if len(password) < 6 {
		return nil, invalid("Password must be at least 6 characters")
	}

	if count, err := s.users.CountByEmail(email); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, ErrEmailTaken
	}
	if count, err := s.users.CountByUsername(username); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{ID: uuid.NewString(), Username: username, Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// ValidateCredentials returns the same generic error for an unknown email and
// a wrong password.
func (s *UserService) ValidateCredentials(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, invalid("Email and password are required")
	}
	u, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Exists(id string) (bool, error) {
	_, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
