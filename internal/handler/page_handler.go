package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"profilehub/internal/service"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	profileService service.ProfileService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(profileService service.ProfileService) *PageHandler {
	return &PageHandler{profileService: profileService}
}

// Home renders the landing page.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", nil)
}

// Profile renders a user's public profile page. Unknown usernames render
// the not-found page with a 404 status.
func (h *PageHandler) Profile(c echo.Context) error {
	username := c.Param("username")

	user, err := h.profileService.GetByUsername(c.Request().Context(), username)
	if err != nil {
		if err == service.ErrUserNotFound {
			return c.Render(http.StatusNotFound, "notfound.html", map[string]interface{}{
				"Username": username,
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	name := user.DisplayName
	if name == "" {
		name = user.Username
	}

	// First rune, not first byte: names may start with a multibyte rune.
	initial, _ := utf8.DecodeRuneInString(name)

	return c.Render(http.StatusOK, "profile.html", map[string]interface{}{
		"Name":      name,
		"Username":  user.Username,
		"Bio":       user.Bio,
		"AvatarURL": user.AvatarURL,
		"Initial":   strings.ToUpper(string(initial)),
		"JoinDate":  user.CreatedAt.Format("January 2, 2006"),
	})
}
