package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"hubsite/internal/model"
	"hubsite/internal/repository"
	"hubsite/internal/session"
)

const (
	// LoginPath is where anonymous callers are sent when they hit a
	// protected route.
	LoginPath = "/login"

	userContextKey = "hubsite.user"
)

// Guard resolves the caller's identity from the session and gates protected
// routes. It replaces implicit control transfer with an explicit middleware
// composed in front of each protected handler.
type Guard struct {
	sessions *session.Manager
	users    repository.UserRepository
}

// NewGuard creates a new guard.
func NewGuard(sessions *session.Manager, users repository.UserRepository) *Guard {
	return &Guard{sessions: sessions, users: users}
}

// CurrentUser returns the signed-in user, or nil for anonymous callers.
// A session pointing at a user row that no longer exists is treated as
// anonymous, never as an error.
func (g *Guard) CurrentUser(c echo.Context) *model.User {
	id, ok := g.sessions.UserID(c)
	if !ok {
		return nil
	}
	user, err := g.users.FindByID(c.Request().Context(), id)
	if err != nil {
		return nil
	}
	return user
}

// RequireUser redirects anonymous callers to the login page, remembering the
// requested path so login can send them back. Authenticated callers get their
// user attached to the request context.
func (g *Guard) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := g.CurrentUser(c)
		if user == nil {
			target := LoginPath + "?next=" + url.QueryEscape(c.Request().URL.Path)
			return c.Redirect(http.StatusFound, target)
		}
		c.Set(userContextKey, user)
		return next(c)
	}
}

// UserFrom returns the user attached by RequireUser, nil outside guarded routes.
func UserFrom(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// SafeNextPath returns next if it is a local path suitable for a post-login
// redirect, otherwise the fallback. Absolute URLs and scheme-relative URLs
// are rejected to prevent open redirects.
func SafeNextPath(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}
	return next
}
