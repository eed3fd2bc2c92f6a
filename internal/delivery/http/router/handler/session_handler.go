package handler

import (
	"log/slog"
	"net/http"

	"feria/internal/delivery/http/response"
	"feria/internal/domain/entity"
	"feria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session and navigation handlers.
type SessionHandler struct {
	nav    usecase.NavigationUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(nav usecase.NavigationUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{nav: nav, logger: logger}
}

type chooseRoleInput struct {
	Role string `json:"role" validate:"required"`
}

type selectCategoryInput struct {
	Category string `json:"category" validate:"required"`
}

// GetSession returns the current app state snapshot.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.nav.Current(), "")
}

// ChooseRole picks cliente or vendedor on the welcome screen.
func (h *SessionHandler) ChooseRole(c echo.Context) error {
	var input chooseRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No pudimos leer tu elección.")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.nav.ChooseRole(entity.Role(input.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.nav.Current(), "Elegiste tu perfil.")
}

// Register completes the registration form and starts the session.
func (h *SessionHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No pudimos leer el formulario.")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.nav.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "¡Bienvenido a la feria!")
}

// SelectCategory changes the directory's category filter.
func (h *SessionHandler) SelectCategory(c echo.Context) error {
	var input selectCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No pudimos leer la categoría.")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.nav.SelectCategory(c.Request().Context(), input.Category); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.nav.Current(), "")
}

// GoHome returns to the role's home view.
func (h *SessionHandler) GoHome(c echo.Context) error {
	if err := h.nav.GoHome(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.nav.Current(), "")
}

// Logout ends the session from the dashboard.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.nav.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.nav.Current(), "Cerraste tu sesión.")
}
