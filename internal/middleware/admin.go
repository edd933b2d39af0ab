package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopmart/internal/common"
	"shopmart/internal/repositories"
)

type AdminMiddleware struct {
	users repositories.UserRepository
}

func NewAdminMiddleware(users repositories.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{users: users}
}

// RequireAdmin re-reads the role from storage rather than trusting the
// token claim, so a demoted admin loses access as soon as the row changes.
func (m *AdminMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			userID, ok := common.GetUserIDFromContext(ctx)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			user, err := m.users.GetByID(ctx, userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}
			if user.Role != common.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}

			return next(c)
		}
	}
}
