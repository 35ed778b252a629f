package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"hubsite/internal/cart"
)

const (
	cookieName = "hubsite_session"

	userIDKey = "user_id"
	cartKey   = "cart"

	contextKey = "hubsite.session"
)

func init() {
	// The cart type travels inside the gob-encoded session cookie.
	gob.Register(cart.Cart{})
}

// Manager holds session state in a signed cookie: at most a user id and a
// cart. All other per-user state lives in the database.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager builds a cookie-backed session manager.
func NewManager(secret []byte, secure bool) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Path = "/"
	return &Manager{store: store}
}

// Middleware loads the session into the request context so handlers share a
// single decode per request.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// An undecodable cookie yields a fresh session, never an error
			// surfaced to the visitor.
			sess, _ := m.store.Get(c.Request(), cookieName)
			c.Set(contextKey, sess)
			return next(c)
		}
	}
}

func (m *Manager) session(c echo.Context) *sessions.Session {
	if sess, ok := c.Get(contextKey).(*sessions.Session); ok {
		return sess
	}
	sess, _ := m.store.Get(c.Request(), cookieName)
	c.Set(contextKey, sess)
	return sess
}

// UserID returns the signed-in user's id, if any.
func (m *Manager) UserID(c echo.Context) (uint, bool) {
	sess := m.session(c)
	switch v := sess.Values[userIDKey].(type) {
	case uint:
		return v, true
	case int:
		if v > 0 {
			return uint(v), true
		}
	}
	return 0, false
}

// SetUserID binds a user id into the session and writes the cookie.
func (m *Manager) SetUserID(c echo.Context, id uint) error {
	sess := m.session(c)
	sess.Values[userIDKey] = id
	return sess.Save(c.Request(), c.Response())
}

// Cart returns the session cart, empty if none was stored yet. The returned
// cart is a copy of the session value; call SaveCart to persist mutations.
func (m *Manager) Cart(c echo.Context) cart.Cart {
	sess := m.session(c)
	stored, ok := sess.Values[cartKey].(cart.Cart)
	if !ok {
		return cart.New()
	}
	copied := cart.New()
	for k, v := range stored {
		copied[k] = v
	}
	return copied
}

// SaveCart stores the cart back into the session and writes the cookie.
func (m *Manager) SaveCart(c echo.Context, crt cart.Cart) error {
	sess := m.session(c)
	sess.Values[cartKey] = crt
	return sess.Save(c.Request(), c.Response())
}

// Clear drops all session state, identity and cart alike, and expires the cookie.
func (m *Manager) Clear(c echo.Context) error {
	sess := m.session(c)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}
