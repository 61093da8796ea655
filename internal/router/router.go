package router

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"fittrack/internal/auth"
	"fittrack/internal/config"
	"fittrack/internal/errors"
	"fittrack/internal/handler"
	"fittrack/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	fitnessHandler *handler.FitnessHandler,
	healthHandler *handler.HealthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Dashboard origins only.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = httpErrorHandler

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Fitness & Health Tracker API",
			"version": "1.0.0",
			"docs":    "/swagger/index.html",
		})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require a valid bearer token resolving to a user)
	guard := auth.Guard(jwtService)
	currentUser := auth.CurrentUser(userRepo)

	e.GET("/auth/me", authHandler.Me, guard, currentUser)

	fitness := e.Group("/fitness-records", guard, currentUser)
	fitness.GET("", fitnessHandler.List)
	fitness.POST("", fitnessHandler.Create)
	fitness.GET("/:id", fitnessHandler.Get)
	fitness.PUT("/:id", fitnessHandler.Update)
	fitness.DELETE("/:id", fitnessHandler.Delete)

	metrics := e.Group("/health-metrics", guard, currentUser)
	metrics.GET("", healthHandler.List)
	metrics.POST("", healthHandler.Create)
	metrics.GET("/:id", healthHandler.Get)
	metrics.PUT("/:id", healthHandler.Update)
	metrics.DELETE("/:id", healthHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// httpErrorHandler keeps every error body in the
// {"detail": {code, message}} envelope, including errors raised by echo
// itself (route not found, method not allowed, bind failures).
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := errors.NewErrorResponse("INTERNAL_ERROR", "internal server error")

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch m := he.Message.(type) {
		case errors.ErrorResponse:
			body = m
		case string:
			body = errors.NewErrorResponse(defaultCodeForStatus(status), m)
		default:
			body = errors.NewErrorResponse(defaultCodeForStatus(status), fmt.Sprintf("%v", m))
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}

func defaultCodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case http.StatusUnauthorized:
		return "TOKEN_INVALID"
	case http.StatusForbidden:
		return "ACCESS_DENIED"
	case http.StatusNotFound:
		return "RESOURCE_NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}
