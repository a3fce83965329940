package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"profilehub/internal/auth"
	"profilehub/internal/model"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "auth-token"

// Manager stores and retrieves session tokens in an HTTP-only cookie.
// Sessions are stateless: logout only removes the cookie, it does not
// revoke tokens a client may have kept.
type Manager struct {
	tokens *auth.JWTService
	secure bool
}

// NewManager creates a session manager. The secure flag marks cookies
// Secure and should be set only in production deployments.
func NewManager(tokens *auth.JWTService, secure bool) *Manager {
	return &Manager{tokens: tokens, secure: secure}
}

// Create issues a token for the user and sets it as the session cookie.
func (m *Manager) Create(c echo.Context, user *model.User) (string, error) {
	token, err := m.tokens.Issue(user.ID, user.Email, user.Username)
	if err != nil {
		return "", err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.TokenExpiry.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return token, nil
}

// Read returns the verified claims of the current session, or (nil, false)
// when the cookie is missing or the token does not verify. The two cases
// are not distinguished.
func (m *Manager) Read(c echo.Context) (*auth.Claims, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	claims, err := m.tokens.Verify(cookie.Value)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// Clear deletes the session cookie.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
