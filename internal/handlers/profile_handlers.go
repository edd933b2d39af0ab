package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/repositories"
)

type ProfileHandlers struct {
	users repositories.UserRepository
}

func NewProfileHandlers(users repositories.UserRepository) *ProfileHandlers {
	return &ProfileHandlers{users: users}
}

func (h *ProfileHandlers) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "User")
		}
		return common.SendServerError(c, "Failed to fetch profile")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *ProfileHandlers) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Firstname) == "" || strings.TrimSpace(req.Lastname) == "" {
		return common.SendValidationError(c, "firstname", "firstname and lastname are required")
	}

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "User")
		}
		return common.SendServerError(c, "Failed to fetch profile")
	}

	user.Firstname = strings.TrimSpace(req.Firstname)
	user.Lastname = strings.TrimSpace(req.Lastname)
	user.Address = req.Address
	user.Phone = req.Phone

	if err := h.users.UpdateProfile(ctx, user); err != nil {
		return common.SendServerError(c, "Failed to update profile")
	}
	return c.JSON(http.StatusOK, user)
}
