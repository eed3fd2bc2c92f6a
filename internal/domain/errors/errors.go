package errors

import (
	"net/http"

	"feria/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrNoActiveUser = NewBaseError(
		http.StatusUnauthorized,
		"NO_ACTIVE_USER",
		"Iniciá sesión para continuar",
		"",
	)

	ErrAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"ALREADY_REGISTERED",
		"Ya hay una sesión activa, cerrala antes de registrarte de nuevo",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Sesión inválida o vencida",
		"",
	)

	// Navigation-related errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"Esa acción no está disponible en la pantalla actual",
		"",
	)

	ErrOperationInFlight = NewBaseError(
		http.StatusConflict,
		"OPERATION_IN_FLIGHT",
		"Esperá, todavía estamos procesando tu pedido anterior",
		"",
	)

	// Catalog-related errors
	ErrVendorNotFound = NewBaseError(
		http.StatusNotFound,
		"VENDOR_NOT_FOUND",
		"No encontramos ese puesto en la feria",
		"",
	)

	ErrNotAVendor = NewBaseError(
		http.StatusForbidden,
		"NOT_A_VENDOR",
		"Esta sección es solo para feriantes",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Completá los campos obligatorios",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"El precio tiene que ser un número mayor o igual a cero",
		"",
	)

	ErrEmptyClaim = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CLAIM",
		"Escribí tu descargo antes de enviarlo",
		"",
	)

	// Camera-related errors
	ErrCameraUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CAMERA_UNAVAILABLE",
		"No pudimos acceder a la cámara",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Algo salió mal, probá de nuevo",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No encontramos ese recurso",
		"",
	)
)
