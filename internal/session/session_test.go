package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"hubsite/internal/cart"
)

func newContext(e *echo.Echo, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestManager_UserIDRoundTrip(t *testing.T) {
	e := echo.New()
	m := NewManager([]byte("test-secret"), false)

	c, rec := newContext(e, nil)
	_, ok := m.UserID(c)
	assert.False(t, ok)

	assert.NoError(t, m.SetUserID(c, 7))

	// Replay the issued cookie on a fresh request.
	c2, _ := newContext(e, rec.Result().Cookies())
	id, ok := m.UserID(c2)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
}

func TestManager_CartRoundTrip(t *testing.T) {
	e := echo.New()
	m := NewManager([]byte("test-secret"), false)

	c, rec := newContext(e, nil)
	assert.True(t, m.Cart(c).IsEmpty())

	crt := cart.New()
	crt.Add(3, 2)
	assert.NoError(t, m.SaveCart(c, crt))

	c2, _ := newContext(e, rec.Result().Cookies())
	loaded := m.Cart(c2)
	assert.Equal(t, 2, loaded.Quantity(3))
}

func TestManager_ClearDropsEverything(t *testing.T) {
	e := echo.New()
	m := NewManager([]byte("test-secret"), false)

	c, rec := newContext(e, nil)
	assert.NoError(t, m.SetUserID(c, 7))
	crt := cart.New()
	crt.Add(3, 1)
	assert.NoError(t, m.SaveCart(c, crt))

	c2, rec2 := newContext(e, rec.Result().Cookies())
	assert.NoError(t, m.Clear(c2))

	c3, _ := newContext(e, rec2.Result().Cookies())
	_, ok := m.UserID(c3)
	assert.False(t, ok)
	assert.True(t, m.Cart(c3).IsEmpty())
}

func TestManager_BadCookieYieldsFreshSession(t *testing.T) {
	e := echo.New()
	m := NewManager([]byte("test-secret"), false)

	c, _ := newContext(e, []*http.Cookie{{Name: cookieName, Value: "garbage"}})
	_, ok := m.UserID(c)
	assert.False(t, ok)
	assert.True(t, m.Cart(c).IsEmpty())
}
