package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fittrack/internal/errors"
)

// domainError converts a service error into the HTTP error envelope.
// 401 responses carry the WWW-Authenticate challenge.
func domainError(c echo.Context, err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func validationError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest,
		errors.NewErrorResponse("VALIDATION_ERROR", message))
}

func notFoundError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound,
		errors.NewErrorResponse("RESOURCE_NOT_FOUND", message))
}
