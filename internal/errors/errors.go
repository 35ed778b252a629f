package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a catalog item, booking, or record is not found.
	ErrNotFound = errors.New("not found")
	// ErrMissingFields is returned when required input fields are empty.
	ErrMissingFields = errors.New("all fields are required")
	// ErrWeakPassword is returned when a password fails the strength policy.
	ErrWeakPassword = errors.New("password must be at least 8 characters with 1 uppercase letter, 1 number, and 1 special character")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials is returned for any failed login, without saying why.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidDateRange is returned when booking dates are malformed or reversed.
	ErrInvalidDateRange = errors.New("invalid booking date range")
	// ErrEmptyCart is returned when checkout is attempted with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
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

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidDateRange):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_RANGE")
	case errors.Is(err, ErrEmptyCart):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CART")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
