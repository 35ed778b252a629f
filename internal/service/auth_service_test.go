package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "hubsite/internal/errors"
	"hubsite/internal/model"
)

func TestPasswordPolicy_Check(t *testing.T) {
	policy := DefaultPasswordPolicy()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "meets all requirements", password: "Str0ng!pass", want: true},
		{name: "too short", password: "S1!a", want: false},
		{name: "no uppercase", password: "weak1pass!", want: false},
		{name: "no digit", password: "Weakpass!!", want: false},
		{name: "no symbol", password: "Weakpass123", want: false},
		{name: "empty", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Check(tt.password))
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
		wantEmail     string
	}{
		{
			name:     "successful registration normalizes email",
			userName: "Test User",
			email:    "Test@Example.COM",
			password: "Str0ng!pass",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			wantEmail: "test@example.com",
		},
		{
			name:     "duplicate email regardless of casing",
			userName: "Existing User",
			email:    "EXISTING@example.com",
			password: "Str0ng!pass",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").
					Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name:          "weak password",
			userName:      "Test User",
			email:         "test@example.com",
			password:      "weakpass",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrWeakPassword,
		},
		{
			name:          "missing fields",
			userName:      "",
			email:         "test@example.com",
			password:      "Str0ng!pass",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, DefaultPasswordPolicy())
			user, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.wantEmail, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Str0ng!pass"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "Str0ng!pass",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           1,
					Email:        "test@example.com",
					PasswordHash: string(hashed),
				}, nil)
			},
		},
		{
			name:     "unknown email yields generic error",
			email:    "nobody@example.com",
			password: "Str0ng!pass",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password yields the same generic error",
			email:    "test@example.com",
			password: "Wr0ng!pass",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           1,
					Email:        "test@example.com",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, DefaultPasswordPolicy())
			user, err := svc.Authenticate(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
