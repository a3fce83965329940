package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilehub/internal/auth"
	"profilehub/internal/model"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testUser() *model.User {
	return &model.User{ID: 7, Username: "alice", Email: "alice@example.com"}
}

func TestManager_CreateSetsCookie(t *testing.T) {
	m := NewManager(auth.NewJWTService("test-secret"), false)
	c, rec := newTestContext()

	token, err := m.Create(c, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, token, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(auth.TokenExpiry.Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestManager_SecureCookieInProduction(t *testing.T) {
	m := NewManager(auth.NewJWTService("test-secret"), true)
	c, rec := newTestContext()

	_, err := m.Create(c, testUser())
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestManager_ReadRoundtrip(t *testing.T) {
	m := NewManager(auth.NewJWTService("test-secret"), false)

	c, rec := newTestContext()
	_, err := m.Create(c, testUser())
	require.NoError(t, err)
	cookie := rec.Result().Cookies()[0]

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	c2 := e.NewContext(req, httptest.NewRecorder())

	claims, ok := m.Read(c2)
	require.True(t, ok)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestManager_ReadAbsent(t *testing.T) {
	m := NewManager(auth.NewJWTService("test-secret"), false)

	// Missing cookie and invalid token behave identically.
	c, _ := newTestContext()
	claims, ok := m.Read(c)
	assert.False(t, ok)
	assert.Nil(t, claims)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tampered"})
	c2 := e.NewContext(req, httptest.NewRecorder())
	claims, ok = m.Read(c2)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestManager_Clear(t *testing.T) {
	m := NewManager(auth.NewJWTService("test-secret"), false)
	c, rec := newTestContext()

	m.Clear(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
