package auth

import (
	stderrors "errors"
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/repository"
)

// ContextUserKey is the echo context key holding the authenticated user.
const ContextUserKey = "current_user"

// Guard returns the JWT middleware for protected routes. Requests end in
// exactly one of: 401 TOKEN_INVALID (missing, malformed or unsigned
// token), 401 TOKEN_EXPIRED (valid signature, past expiry), or the token
// claims stored in context for CurrentUser to resolve.
func Guard(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if stderrors.Is(err, jwt.ErrTokenExpired) {
				return unauthorized(c, "TOKEN_EXPIRED", "Token has expired")
			}
			return unauthorized(c, "TOKEN_INVALID", "Could not validate credentials")
		},
	})
}

// CurrentUser resolves the token subject to an existing user and stores it
// in the request context. A subject with no matching user is treated the
// same as an invalid token.
func CurrentUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				return unauthorized(c, "TOKEN_INVALID", "Could not validate credentials")
			}

			userID, err := claims.UserID()
			if err != nil {
				return unauthorized(c, "TOKEN_INVALID", "Could not validate credentials")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if stderrors.Is(err, gorm.ErrRecordNotFound) {
					return unauthorized(c, "TOKEN_INVALID", "Could not validate credentials")
				}
				return echo.NewHTTPError(http.StatusInternalServerError,
					errors.NewErrorResponse("INTERNAL_ERROR", "internal server error"))
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the authenticated user placed by CurrentUser.
func UserFromContext(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}

func unauthorized(c echo.Context, code, message string) *echo.HTTPError {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, errors.NewErrorResponse(code, message))
}
