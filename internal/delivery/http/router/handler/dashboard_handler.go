package handler

import (
	"net/http"

	"feria/internal/delivery/http/response"
	domainerrors "feria/internal/domain/errors"
	"feria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the feriante dashboard handlers.
type DashboardHandler struct {
	nav       usecase.NavigationUsecase
	catalog   usecase.CatalogUsecase
	assistant usecase.AssistantUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(
	nav usecase.NavigationUsecase,
	catalog usecase.CatalogUsecase,
	assistant usecase.AssistantUsecase,
) *DashboardHandler {
	return &DashboardHandler{nav: nav, catalog: catalog, assistant: assistant}
}

// currentVendorID resolves the stall controlled by the session user.
func (h *DashboardHandler) currentVendorID() (string, error) {
	snapshot := h.nav.Current()
	if snapshot.User == nil || !snapshot.User.IsVendor() {
		return "", errors.WithStack(domainerrors.ErrNotAVendor)
	}

	return snapshot.User.VendorID, nil
}

// Stats summarizes the stall's counters and rating.
func (h *DashboardHandler) Stats(c echo.Context) error {
	vendorID, err := h.currentVendorID()
	if err != nil {
		return err
	}

	stats, err := h.catalog.Stats(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// StallQR serves the stall's printable identity code.
func (h *DashboardHandler) StallQR(c echo.Context) error {
	vendorID, err := h.currentVendorID()
	if err != nil {
		return err
	}

	png, err := h.catalog.StallQR(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Tip returns the assistant's daily selling tip for the stall's category.
func (h *DashboardHandler) Tip(c echo.Context) error {
	vendorID, err := h.currentVendorID()
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	vendor, err := h.catalog.GetVendor(ctx, vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	tip, err := h.assistant.DailySellerTip(ctx, vendor.Category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"tip": tip}, "")
}

// Messages lists the customer messages addressed to the stall.
func (h *DashboardHandler) Messages(c echo.Context) error {
	vendorID, err := h.currentVendorID()
	if err != nil {
		return err
	}

	vendor, err := h.catalog.GetVendor(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor.Messages, "")
}

// UpdateDraft replaces the new-product form draft.
func (h *DashboardHandler) UpdateDraft(c echo.Context) error {
	var input usecase.ProductDraftInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No pudimos leer el producto.")
	}

	if err := h.nav.UpdateProductDraft(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.nav.Current().ProductDraft, "")
}

// GenerateDescription fills the draft's description and price with the
// assistant's suggestion.
func (h *DashboardHandler) GenerateDescription(c echo.Context) error {
	draft, err := h.nav.GenerateDraftDescription(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, draft, "")
}

// PublishProduct validates the draft and adds it to the stall.
func (h *DashboardHandler) PublishProduct(c echo.Context) error {
	product, err := h.nav.PublishProduct(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "¡Producto publicado!")
}
