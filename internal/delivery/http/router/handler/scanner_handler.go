package handler

import (
	"net/http"

	"feria/internal/delivery/http/response"
	"feria/internal/domain/service"
	"feria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ScannerHandler holds dependencies for the QR scanner handlers.
type ScannerHandler struct {
	nav usecase.NavigationUsecase
	qr  service.QRCodeService
}

// NewScannerHandler is the constructor for ScannerHandler, injected by Fx.
func NewScannerHandler(nav usecase.NavigationUsecase, qr service.QRCodeService) *ScannerHandler {
	return &ScannerHandler{nav: nav, qr: qr}
}

// scanInput accepts either a decoded stall id or the raw QR payload.
type scanInput struct {
	VendorID string `json:"vendor_id"`
	QRData   string `json:"qr_data"`
}

// Open enters the scanner view, acquiring the camera.
func (h *ScannerHandler) Open(c echo.Context) error {
	if err := h.nav.OpenScanner(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.nav.Current(), "")
}

// Scan resolves a scanned code: favorites the stall and opens its detail.
func (h *ScannerHandler) Scan(c echo.Context) error {
	var input scanInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No pudimos leer el código.")
	}

	vendorID := input.VendorID
	if vendorID == "" && input.QRData != "" {
		parsed, err := h.qr.ParseStallQR(input.QRData)
		if err != nil {
			return response.BindingError(c, "INVALID_QR", "Ese código no es de la feria.")
		}
		vendorID = parsed
	}
	if vendorID == "" {
		return response.BindingError(c, "INVALID_INPUT", "Falta el código del puesto.")
	}

	vendor, err := h.nav.Scan(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "¡Puesto guardado en favoritos!")
}
