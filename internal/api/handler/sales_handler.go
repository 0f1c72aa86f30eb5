package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/admin-api/internal/core/ports"
)

// SalesHandler serves the read-only monthly reporting dataset.
type SalesHandler struct {
	service ports.SalesService
}

func NewSalesHandler(service ports.SalesService) *SalesHandler {
	return &SalesHandler{service: service}
}

type salesRequest struct {
	Month string `json:"month"`
}

// List handles POST /sales — returns reports matching the requested month.
// An empty month returns the whole dataset.
//
// @Summary      Query sales reports by month
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body      salesRequest  true  "Month filter"
// @Success      200   {array}   domain.SalesReport
// @Failure      400   {object}  errorResponse
// @Router       /sales [post]
func (h *SalesHandler) List(c echo.Context) error {
	var req salesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	reports, err := h.service.ListReports(c.Request().Context(), req.Month)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reports)
}
