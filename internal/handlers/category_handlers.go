package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/services"
)

type CategoryHandlers struct {
	categories services.CategoryService
}

func NewCategoryHandlers(categories services.CategoryService) *CategoryHandlers {
	return &CategoryHandlers{categories: categories}
}

func (h *CategoryHandlers) ListCategories(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to fetch categories")
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandlers) GetCategory(c echo.Context) error {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	category, err := h.categories.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return common.SendNotFoundError(c, "Category")
		}
		return common.SendServerError(c, "Failed to fetch category")
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandlers) CreateCategory(c echo.Context) error {
	var category models.Category
	if err := c.Bind(&category); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}

	id, err := h.categories.Create(c.Request().Context(), &category)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrDuplicate):
			return common.SendClientError(c, err.Error())
		default:
			return common.SendServerError(c, "Failed to create category")
		}
	}
	category.ID = id
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandlers) UpdateCategory(c echo.Context) error {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var category models.Category
	if err := c.Bind(&category); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	category.ID = id

	if err := h.categories.Update(c.Request().Context(), &category); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrDuplicate):
			return common.SendClientError(c, err.Error())
		case errors.Is(err, services.ErrNotFound):
			return common.SendNotFoundError(c, "Category")
		default:
			return common.SendServerError(c, "Failed to update category")
		}
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandlers) DeleteCategory(c echo.Context) error {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return common.SendNotFoundError(c, "Category")
		}
		return common.SendServerError(c, "Failed to delete category")
	}
	return c.NoContent(http.StatusNoContent)
}
