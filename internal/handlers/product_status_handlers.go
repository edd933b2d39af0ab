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

// ProductStatusHandlers goes straight to the repository, the entity is a
// flat lookup table with no business rules.
type ProductStatusHandlers struct {
	statuses repositories.ProductStatusRepository
}

func NewProductStatusHandlers(statuses repositories.ProductStatusRepository) *ProductStatusHandlers {
	return &ProductStatusHandlers{statuses: statuses}
}

func (h *ProductStatusHandlers) ListStatuses(c echo.Context) error {
	statuses, err := h.statuses.List(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to fetch product statuses")
	}
	if statuses == nil {
		statuses = []*models.ProductStatus{}
	}
	return c.JSON(http.StatusOK, statuses)
}

func (h *ProductStatusHandlers) GetStatus(c echo.Context) error {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	status, err := h.statuses.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.SendNotFoundError(c, "Product status")
		}
		return common.SendServerError(c, "Failed to fetch product status")
	}
	return c.JSON(http.StatusOK, status)
}

func (h *ProductStatusHandlers) CreateStatus(c echo.Context) error {
	var status models.ProductStatus
	if err := c.Bind(&status); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	status.Name = strings.TrimSpace(status.Name)
	if status.Name == "" {
		return common.SendValidationError(c, "name", "name is required")
	}

	id, err := h.statuses.Create(c.Request().Context(), &status)
	if err != nil {
		return common.SendServerError(c, "Failed to create product status")
	}
	status.ID = id
	return c.JSON(http.StatusCreated, status)
}

func (h *ProductStatusHandlers) UpdateStatus(c echo.Context) error {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var status models.ProductStatus
	if err := c.Bind(&status); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	status.ID = id
	status.Name = strings.TrimSpace(status.Name)
	if status.Name == "" {
		return common.SendValidationError(c, "name", "name is required")
	}

	if err := h.statuses.Update(c.Request().Context(), &status); err != nil {
		return common.SendServerError(c, "Failed to update product status")
	}
	return c.JSON(http.StatusOK, status)
}

func (h *ProductStatusHandlers) DeleteStatus(c echo.Context) error {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.statuses.Delete(c.Request().Context(), id); err != nil {
		return common.SendServerError(c, "Failed to delete product status")
	}
	return c.NoContent(http.StatusNoContent)
}
