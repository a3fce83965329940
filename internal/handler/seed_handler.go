package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"profilehub/internal/errors"
	"profilehub/internal/service"
)

// SeedHandler exposes demo-user seeding for local development.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedUsers godoc
// @Summary Seed demo users
// @Tags seed
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/users [get]
func (h *SeedHandler) SeedUsers(c echo.Context) error {
	created, updated, err := h.seedService.Run(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusOK, map[string]int{
		"created": created,
		"updated": updated,
	})
}
