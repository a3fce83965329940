package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"profilehub/internal/errors"
	"profilehub/internal/model"
	"profilehub/internal/service"
	"profilehub/internal/session"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService    service.AuthService
	profileService service.ProfileService
	sessions       *session.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, profileService service.ProfileService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
		sessions:       sessions,
	}
}

// SignupRequest represents a user signup request.
type SignupRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=20,username"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"display_name" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse represents the public fields of a user.
type UserResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
}

// UserEnvelope wraps a user payload, or null when there is no session.
type UserEnvelope struct {
	User *UserResponse `json:"user"`
}

func newUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
	}
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} UserEnvelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// Usernames are stored lowercase; normalize before validation so the
	// charset rule sees the stored value.
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	user, err := h.authService.Signup(c.Request().Context(), req.Username, req.Email, req.Password, req.DisplayName)
	if err != nil {
		if err == service.ErrUserExists {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "Username or email already exists",
				Code:  "USER_EXISTS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	if _, err := h.sessions.Create(c, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusCreated, UserEnvelope{User: newUserResponse(user)})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} UserEnvelope
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.NewValidationResponse(err))
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	if _, err := h.sessions.Create(c, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusOK, UserEnvelope{User: newUserResponse(user)})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// Me godoc
// @Summary Return the current authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} UserEnvelope
// @Failure 401 {object} UserEnvelope
// @Failure 404 {object} UserEnvelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := h.sessions.Read(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, UserEnvelope{User: nil})
	}

	user, err := h.profileService.GetByID(c.Request().Context(), claims.UserID)
	if err != nil {
		// The subject may have been removed after the token was issued.
		if err == service.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, UserEnvelope{User: nil})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusOK, UserEnvelope{User: newUserResponse(user)})
}
