package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAuthRequired is returned when no bearer token is presented.
	ErrAuthRequired = errors.New("authentication required")
	// ErrInvalidToken is returned when a bearer token is malformed, forged or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrForbidden is returned when the principal type does not match the route.
	ErrForbidden = errors.New("insufficient privileges")
	// ErrInvalidOTP is returned when OTP verification fails.
	ErrInvalidOTP = errors.New("invalid or expired otp")
	// ErrInvalidCredentials is returned when admin username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidPhone is returned when a phone number cannot be normalized.
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrUserNotFound is returned when a principal does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrFileRequired is returned when an upload request carries no file.
	ErrFileRequired = errors.New("file is required")
	// ErrInvalidFileType is returned when the file mimetype is not allowed.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrFileTooLarge is returned when the file exceeds the configured maximum.
	ErrFileTooLarge = errors.New("file too large")
	// ErrPaymentRequired is returned when a gated operation runs before payment completes.
	ErrPaymentRequired = errors.New("payment not completed")
	// ErrStorageSave is returned when the durable file store write fails.
	ErrStorageSave = errors.New("failed to save file")
	// ErrTransactionNotFound is returned when a webhook references an unknown order.
	ErrTransactionNotFound = errors.New("payment transaction not found")
	// ErrInvalidSignature is returned when the webhook signature check fails.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// SlipExistsError is returned when an upload would replace an existing slip
// without replace_existing set. It carries the current path so the caller can
// retry deliberately.
type SlipExistsError struct {
	CurrentPath string
}

func (e *SlipExistsError) Error() string {
	return "appointment slip already uploaded"
}

// Envelope is the uniform boundary response shape. Every handler and
// middleware response uses it; internal error text never leaks through it.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unrecognized errors
// collapse to a generic 500 so internal detail never leaks to clients.
func MapErrorToHTTP(err error) *HTTPError {
	var slipErr *SlipExistsError
	if errors.As(err, &slipErr) {
		return NewHTTPError(http.StatusBadRequest, slipErr.Error(), "SLIP_EXISTS")
	}

	switch {
	case errors.Is(err, ErrAuthRequired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "AUTH_REQUIRED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "AUTH_FAILED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidOTP):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_OTP")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidSignature):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SIGNATURE")
	case errors.Is(err, ErrInvalidPhone):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PHONE")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrTransactionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRANSACTION_NOT_FOUND")
	case errors.Is(err, ErrFileRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FILE_REQUIRED")
	case errors.Is(err, ErrInvalidFileType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_FILE_TYPE")
	case errors.Is(err, ErrFileTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FILE_TOO_LARGE")
	case errors.Is(err, ErrPaymentRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PAYMENT_REQUIRED")
	case errors.Is(err, ErrStorageSave):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "STORAGE_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
