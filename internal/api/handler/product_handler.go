package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/admin-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products — no authentication required.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /products — admin only.
//
// @Summary      Add a product to the catalog
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        Authorization  header    string                true  "Session token"
// @Param        body           body      createProductRequest  true  "Product fields"
// @Success      200            {object}  messageResponse
// @Failure      400            {object}  errorResponse
// @Failure      401            {object}  errorResponse
// @Failure      403            {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.CreateProduct(c.Request().Context(), toCreateInput(req)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "product added"})
}

// Update handles PUT /products/:id — admin only. The body is a partial
// patch; absent fields are left as stored. No existence check is performed,
// updating an unknown id still returns 200.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        Authorization  header    string                true  "Session token"
// @Param        id             path      string                true  "Product id"
// @Param        body           body      updateProductRequest  true  "Fields to overwrite"
// @Success      200            {object}  messageResponse
// @Failure      400            {object}  errorResponse
// @Failure      401            {object}  errorResponse
// @Failure      403            {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), toPatch(req)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "product updated"})
}

// Delete handles DELETE /products/:id — admin only. Deleting an absent id
// returns 200 as well; the API does not signal not-found on delete.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        Authorization  header    string  true  "Session token"
// @Param        id             path      string  true  "Product id"
// @Success      200            {object}  messageResponse
// @Failure      400            {object}  errorResponse
// @Failure      401            {object}  errorResponse
// @Failure      403            {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}
