package handler

import (
	"net/http"

	"feria/internal/delivery/http/response"
	"feria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VendorHandler holds dependencies for stall detail handlers.
type VendorHandler struct {
	nav       usecase.NavigationUsecase
	catalog   usecase.CatalogUsecase
	assistant usecase.AssistantUsecase
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(
	nav usecase.NavigationUsecase,
	catalog usecase.CatalogUsecase,
	assistant usecase.AssistantUsecase,
) *VendorHandler {
	return &VendorHandler{nav: nav, catalog: catalog, assistant: assistant}
}

// Get returns a stall's full record.
func (h *VendorHandler) Get(c echo.Context) error {
	vendor, err := h.catalog.GetVendor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "")
}

// Open navigates from the directory into a stall's detail view.
func (h *VendorHandler) Open(c echo.Context) error {
	ctx := c.Request().Context()
	vendorID := c.Param("id")

	if err := h.nav.OpenVendor(ctx, vendorID); err != nil {
		return errors.WithStack(err)
	}

	vendor, err := h.catalog.GetVendor(ctx, vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "")
}

// Close returns from the stall detail to the directory.
func (h *VendorHandler) Close(c echo.Context) error {
	if err := h.nav.CloseVendor(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.nav.Current(), "")
}

// Insight returns a one-line assistant pitch for the stall.
func (h *VendorHandler) Insight(c echo.Context) error {
	insight, err := h.assistant.VendorInsight(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"insight": insight}, "")
}
