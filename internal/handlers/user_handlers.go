package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/repositories"
)

type UserHandlers struct {
	users repositories.UserRepository
}

func NewUserHandlers(users repositories.UserRepository) *UserHandlers {
	return &UserHandlers{users: users}
}

// ListUsers is admin only, enforced by route middleware
func (h *UserHandlers) ListUsers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	users, err := h.users.List(c.Request().Context(), limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to fetch users")
	}
	if users == nil {
		users = []*models.User{}
	}
	return c.JSON(http.StatusOK, users)
}
