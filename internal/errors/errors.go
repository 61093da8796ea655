package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUsernameTaken is returned when registering with an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when registering with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or revoked.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAccessDenied is returned when a record belongs to a different owner.
	ErrAccessDenied = errors.New("you do not have access to this record")
	// ErrDuplicateDate is returned when a health metric already exists for the date.
	ErrDuplicateDate = errors.New("health metric already exists for this date")
	// ErrDateInFuture is returned when a workout date is after the current date.
	ErrDateInFuture = errors.New("date cannot be in the future")
)

// Detail is the machine-readable payload of every error response.
type Detail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error body: {"detail": {code, message}}.
type ErrorResponse struct {
	Detail Detail `json:"detail"`
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Detail: Detail{Code: code, Message: message}}
}

// HTTPError represents an HTTP error with status code and stable code string.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to the response envelope.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return NewErrorResponse(e.Code, e.Message)
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUsernameTaken):
		return NewHTTPError(http.StatusConflict, "DUPLICATE_USERNAME", err.Error())
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, "DUPLICATE_EMAIL", err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", err.Error())
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "RESOURCE_NOT_FOUND", err.Error())
	case errors.Is(err, ErrAccessDenied):
		return NewHTTPError(http.StatusForbidden, "ACCESS_DENIED", err.Error())
	case errors.Is(err, ErrDuplicateDate):
		return NewHTTPError(http.StatusConflict, "DUPLICATE_DATE", err.Error())
	case errors.Is(err, ErrDateInFuture):
		return NewHTTPError(http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
