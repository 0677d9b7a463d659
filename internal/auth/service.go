package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayushhh101/meal-optimizer-backend/internal/apperr"
	"github.com/ayushhh101/meal-optimizer-backend/internal/user"
)

const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service implements registration and login.
type Service struct {
	users  *user.Repository
	tokens *TokenManager
	now    func() time.Time
}

// NewService creates a new auth Service.
func NewService(users *user.Repository, tokens *TokenManager) *Service {
	return &Service{users: users, tokens: tokens, now: time.Now}
}

// Register creates an account and returns the user with a session token.
func (s *Service) Register(ctx context.Context, name, email, password string) (*user.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(name) < 2 || len(name) > 100 {
		return nil, "", apperr.New(apperr.KindValidation, "Name must be between 2 and 100 characters")
	}
	if !emailPattern.MatchString(email) {
		return nil, "", apperr.New(apperr.KindValidation, "Please enter a valid email address")
	}
	if len(password) < 6 {
		return nil, "", apperr.New(apperr.KindValidation, "Password must be at least 6 characters")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", apperr.New(apperr.KindValidation, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.users.Create(ctx, name, email, string(hash), s.now())
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(u.ID, u.Email, u.Name, s.now())
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login authenticates credentials and returns the user with a session
// token. Wrong email, wrong password and deactivated accounts all fail
// the same way so the response does not reveal which one it was.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !u.IsActive {
		return nil, "", apperr.New(apperr.KindUnauthenticated, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperr.New(apperr.KindUnauthenticated, "Invalid email or password")
	}

	now := s.now()
	if err := s.users.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, "", err
	}
	u.LastLogin = now

	token, err := s.tokens.Issue(u.ID, u.Email, u.Name, now)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
