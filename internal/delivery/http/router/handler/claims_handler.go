package handler

import (
	"net/http"

	"feria/internal/delivery/http/response"
	"feria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClaimsHandler holds dependencies for the claim mediation handlers.
type ClaimsHandler struct {
	nav usecase.NavigationUsecase
}

// NewClaimsHandler is the constructor for ClaimsHandler, injected by Fx.
func NewClaimsHandler(nav usecase.NavigationUsecase) *ClaimsHandler {
	return &ClaimsHandler{nav: nav}
}

type submitClaimInput struct {
	Text string `json:"text" validate:"required"`
}

// Open moves from the stall detail into the claim screen.
func (h *ClaimsHandler) Open(c echo.Context) error {
	if err := h.nav.RequestMediation(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.nav.Current(), "")
}

// Submit sends the claim text for mediation and returns the answer.
func (h *ClaimsHandler) Submit(c echo.Context) error {
	var input submitClaimInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No pudimos leer tu descargo.")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.nav.SubmitClaim(c.Request().Context(), input.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Descargo registrado.")
}

// Back leaves the claim screen for the stall detail.
func (h *ClaimsHandler) Back(c echo.Context) error {
	if err := h.nav.Back(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.nav.Current(), "")
}
