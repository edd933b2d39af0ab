package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"shopmart/internal/caching"
	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/services"
)

const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

type AuthHandlers struct {
	auth  services.AuthService
	cache caching.CacheService
}

func NewAuthHandlers(auth services.AuthService, cache caching.CacheService) *AuthHandlers {
	return &AuthHandlers{auth: auth, cache: cache}
}

func (h *AuthHandlers) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}

	resp, err := h.auth.Register(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return common.SendClientError(c, err.Error())
		case errors.Is(err, services.ErrDuplicate):
			return common.SendConflictError(c, "EMAIL_TAKEN", "Email is already registered")
		default:
			logrus.WithError(err).Error("registration failed")
			return common.SendServerError(c, "Failed to register")
		}
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandlers) Login(c echo.Context) error {
	limited, err := h.cache.IsRateLimited(c.Request().Context(), "login:"+c.RealIP(), loginRateLimit, loginRateWindow)
	if err != nil {
		// Redis being down must not lock everyone out
		logrus.WithError(err).Warn("login rate limit check failed")
	} else if limited {
		return common.SendTooManyRequestsError(c)
	}

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}

	resp, err := h.auth.Login(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return common.SendClientError(c, err.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, common.CreateErrorResponse("INVALID_CREDENTIALS", "Invalid email or password", nil))
		default:
			logrus.WithError(err).Error("login failed")
			return common.SendServerError(c, "Failed to log in")
		}
	}
	return c.JSON(http.StatusOK, resp)
}
