package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/services"
)

type ProductHandlers struct {
	products services.ProductService
}

func NewProductHandlers(products services.ProductService) *ProductHandlers {
	return &ProductHandlers{products: products}
}

func (h *ProductHandlers) ListProducts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	products, err := h.products.List(c.Request().Context(), limit, offset)
	if err != nil {
		return common.SendServerError(c, "Failed to fetch products")
	}
	if products == nil {
		products = []*models.Product{}
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandlers) GetProduct(c echo.Context) error {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	product, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return common.SendNotFoundError(c, "Product")
		}
		return common.SendServerError(c, "Failed to fetch product")
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var product models.Product
	if err := c.Bind(&product); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	product.UserID = userID

	id, err := h.products.Create(ctx, &product)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return common.SendClientError(c, err.Error())
		}
		return common.SendServerError(c, "Failed to create product")
	}
	product.ID = id
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var product models.Product
	if err := c.Bind(&product); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	product.ID = id

	if err := h.products.Update(c.Request().Context(), &product); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return common.SendClientError(c, err.Error())
		case errors.Is(err, services.ErrNotFound):
			return common.SendNotFoundError(c, "Product")
		default:
			return common.SendServerError(c, "Failed to update product")
		}
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return common.SendNotFoundError(c, "Product")
		}
		return common.SendServerError(c, "Failed to delete product")
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadProductImage accepts a multipart "image" file and returns a
// presigned URL for the stored object.
func (h *ProductHandlers) UploadProductImage(c echo.Context) error {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return common.SendValidationError(c, "image", "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	url, err := h.products.UploadImage(c.Request().Context(), id, fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), file, fileHeader.Size)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return common.SendNotFoundError(c, "Product")
		}
		return common.SendServerError(c, "Failed to upload image")
	}

	return c.JSON(http.StatusOK, map[string]string{"image_url": url})
}
