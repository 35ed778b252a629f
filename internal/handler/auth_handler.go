package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hubsite/internal/auth"
	"hubsite/internal/service"
	"hubsite/internal/session"
)

// AuthHandler handles signup, login, and logout.
type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// SignupRequest represents a signup form submission.
type SignupRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginRequest represents a login form submission. Next, when present, is
// the local path the visitor was heading for before being sent to login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	Next     string `json:"next" form:"next"`
}

// Signup registers a new account.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "account created successfully, please login",
		"user":    user,
	})
}

// Login authenticates and binds the user into the session. When a next path
// was carried through the login redirect, the visitor is sent back there.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return domainError(err)
	}

	if err := h.sessions.SetUserID(c, user.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save session")
	}

	if next := auth.SafeNextPath(req.Next, ""); next != "" {
		return c.Redirect(http.StatusFound, next)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "logged in successfully",
		"user":    user,
	})
}

// Logout clears the whole session, cart included.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to clear session")
	}
	return c.Redirect(http.StatusFound, "/")
}
