package handler

import (
	"net/http"

	"feria/internal/delivery/http/response"
	"feria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for the market directory handlers.
type DirectoryHandler struct {
	nav       usecase.NavigationUsecase
	catalog   usecase.CatalogUsecase
	assistant usecase.AssistantUsecase
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(
	nav usecase.NavigationUsecase,
	catalog usecase.CatalogUsecase,
	assistant usecase.AssistantUsecase,
) *DirectoryHandler {
	return &DirectoryHandler{nav: nav, catalog: catalog, assistant: assistant}
}

type smartSearchInput struct {
	Query string `json:"query" validate:"required"`
}

// Categories lists the category chips derived from today's active stalls.
func (h *DirectoryHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.ActiveCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Vendors lists the stalls visible in the directory. Without an explicit
// category query it uses the session's active filter.
func (h *DirectoryHandler) Vendors(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		category = h.nav.Current().ActiveCategory
	}

	vendors, err := h.catalog.VisibleVendors(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendors, "")
}

// Saved lists the session user's favorited stalls.
func (h *DirectoryHandler) Saved(c echo.Context) error {
	snapshot := h.nav.Current()

	vendors, err := h.catalog.SavedVendors(c.Request().Context(), snapshot.User)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendors, "")
}

// Announcements lists the feria-wide notices.
func (h *DirectoryHandler) Announcements(c echo.Context) error {
	announcements, err := h.catalog.Announcements(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, announcements, "")
}

// Search answers a free-text market query with the assistant.
func (h *DirectoryHandler) Search(c echo.Context) error {
	var input smartSearchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No pudimos leer tu búsqueda.")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	result, err := h.assistant.SmartSearch(c.Request().Context(), input.Query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}
