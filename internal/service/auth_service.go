package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "hubsite/internal/errors"
	"hubsite/internal/model"
	"hubsite/internal/repository"
)

const bcryptCost = 10

// PasswordPolicy describes the strength requirements for new passwords.
type PasswordPolicy struct {
	MinLength     int
	RequireUpper  bool
	RequireDigit  bool
	RequireSymbol bool
}

// DefaultPasswordPolicy is the strictest policy the site has shipped with.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:     8,
		RequireUpper:  true,
		RequireDigit:  true,
		RequireSymbol: true,
	}
}

// Check reports whether password satisfies the policy.
func (p PasswordPolicy) Check(password string) bool {
	if len(password) < p.MinLength {
		return false
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}
	if p.RequireUpper && !hasUpper {
		return false
	}
	if p.RequireDigit && !hasDigit {
		return false
	}
	if p.RequireSymbol && !hasSymbol {
		return false
	}
	return true
}

// AuthService handles account registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	policy PasswordPolicy
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, policy PasswordPolicy) AuthService {
	return &authService{users: users, policy: policy}
}

// NormalizeEmail lower-cases and trims an email for storage and lookup, so
// re-registration with different casing still collides.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with a bcrypt-hashed password. The raw
// password is not retained past hashing.
func (s *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	password = strings.TrimSpace(password)

	if name == "" || email == "" || password == "" {
		return nil, apperrors.ErrMissingFields
	}
	if !s.policy.Check(password) {
		return nil, apperrors.ErrWeakPassword
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies credentials. Unknown email and wrong password both
// come back as ErrInvalidCredentials so the response leaks nothing.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}
