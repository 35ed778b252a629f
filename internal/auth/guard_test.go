package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hubsite/internal/model"
	"hubsite/internal/session"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newGuardContext(e *echo.Echo, path string, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGuard_RequireUser_RedirectsAnonymous(t *testing.T) {
	e := echo.New()
	sessions := session.NewManager([]byte("test-secret"), false)
	mockRepo := new(MockUserRepository)
	guard := NewGuard(sessions, mockRepo)

	called := false
	h := guard.RequireUser(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	c, rec := newGuardContext(e, "/datahub", nil)
	assert.NoError(t, h(c))

	assert.False(t, called, "protected handler must not run for anonymous callers")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fdatahub", rec.Header().Get(echo.HeaderLocation))
}

func TestGuard_RequireUser_PassesAuthenticated(t *testing.T) {
	e := echo.New()
	sessions := session.NewManager([]byte("test-secret"), false)
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Name: "Sam"}, nil)
	guard := NewGuard(sessions, mockRepo)

	// Sign in once to mint a session cookie.
	seedCtx, seedRec := newGuardContext(e, "/", nil)
	assert.NoError(t, sessions.SetUserID(seedCtx, 7))

	var seen *model.User
	h := guard.RequireUser(func(c echo.Context) error {
		seen = UserFrom(c)
		return c.NoContent(http.StatusOK)
	})

	c, rec := newGuardContext(e, "/datahub", seedRec.Result().Cookies())
	assert.NoError(t, h(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, seen)
	assert.Equal(t, uint(7), seen.ID)
}

func TestGuard_CurrentUser_StaleSessionIsAnonymous(t *testing.T) {
	e := echo.New()
	sessions := session.NewManager([]byte("test-secret"), false)
	mockRepo := new(MockUserRepository)
	// The session points at a user row that no longer exists.
	mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
	guard := NewGuard(sessions, mockRepo)

	seedCtx, seedRec := newGuardContext(e, "/", nil)
	assert.NoError(t, sessions.SetUserID(seedCtx, 9))

	c, _ := newGuardContext(e, "/", seedRec.Result().Cookies())
	assert.Nil(t, guard.CurrentUser(c))
}

func TestSafeNextPath(t *testing.T) {
	tests := []struct {
		name     string
		next     string
		fallback string
		want     string
	}{
		{name: "local path allowed", next: "/datahub", fallback: "/", want: "/datahub"},
		{name: "empty falls back", next: "", fallback: "/", want: "/"},
		{name: "absolute url rejected", next: "https://evil.example", fallback: "/", want: "/"},
		{name: "scheme-relative rejected", next: "//evil.example", fallback: "/", want: "/"},
		{name: "relative path rejected", next: "datahub", fallback: "/", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeNextPath(tt.next, tt.fallback))
		})
	}
}
