package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fittrack/internal/auth"
	"fittrack/internal/model"
	"fittrack/internal/repository"
	"fittrack/internal/service"
)

// HealthHandler handles health metric endpoints.
type HealthHandler struct {
	healthService service.HealthService
}

// NewHealthHandler creates a new health metric handler.
func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// ListHealthMetricsRequest holds the supported list query parameters.
type ListHealthMetricsRequest struct {
	StartDate *model.Date `query:"start_date"`
	EndDate   *model.Date `query:"end_date"`
	Limit     *int        `query:"limit"`
	Offset    int         `query:"offset"`
}

// List godoc
// @Summary List health metrics for the current user
// @Tags health-metrics
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param end_date query string false "Filter by end date (YYYY-MM-DD)"
// @Param limit query int false "Maximum records to return (1-1000, default 100)"
// @Param offset query int false "Number of records to skip"
// @Success 200 {array} model.HealthMetric
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /health-metrics [get]
func (h *HealthHandler) List(c echo.Context) error {
	var req ListHealthMetricsRequest
	if err := c.Bind(&req); err != nil {
		return validationError(err.Error())
	}

	limit, offset, err := paginationBounds(req.Limit, req.Offset)
	if err != nil {
		return err
	}

	user := auth.UserFromContext(c)
	metrics, svcErr := h.healthService.List(c.Request().Context(), user.ID, repository.HealthMetricFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Limit:     limit,
		Offset:    offset,
	})
	if svcErr != nil {
		return domainError(c, svcErr)
	}

	return c.JSON(http.StatusOK, metrics)
}

// Create godoc
// @Summary Create a new health metric
// @Tags health-metrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateHealthMetricInput true "Metric data"
// @Success 201 {object} model.HealthMetric
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /health-metrics [post]
func (h *HealthHandler) Create(c echo.Context) error {
	var input service.CreateHealthMetricInput
	if err := c.Bind(&input); err != nil {
		return validationError("invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return validationError(err.Error())
	}

	user := auth.UserFromContext(c)
	metric, err := h.healthService.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusCreated, metric)
}

// Get godoc
// @Summary Get a health metric by ID
// @Tags health-metrics
// @Produce json
// @Security BearerAuth
// @Param id path string true "Metric ID"
// @Success 200 {object} model.HealthMetric
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /health-metrics/{id} [get]
func (h *HealthHandler) Get(c echo.Context) error {
	metricID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return notFoundError("Health metric not found")
	}

	user := auth.UserFromContext(c)
	metric, err := h.healthService.Get(c.Request().Context(), user.ID, metricID)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, metric)
}

// Update godoc
// @Summary Partially update a health metric
// @Tags health-metrics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Metric ID"
// @Param request body service.HealthMetricPatch true "Fields to change"
// @Success 200 {object} model.HealthMetric
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /health-metrics/{id} [put]
func (h *HealthHandler) Update(c echo.Context) error {
	metricID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return notFoundError("Health metric not found")
	}

	var patch service.HealthMetricPatch
	if err := c.Bind(&patch); err != nil {
		return validationError("invalid request body")
	}
	if err := c.Validate(&patch); err != nil {
		return validationError(err.Error())
	}

	user := auth.UserFromContext(c)
	metric, svcErr := h.healthService.Update(c.Request().Context(), user.ID, metricID, patch)
	if svcErr != nil {
		return domainError(c, svcErr)
	}

	return c.JSON(http.StatusOK, metric)
}

// Delete godoc
// @Summary Delete a health metric
// @Tags health-metrics
// @Security BearerAuth
// @Param id path string true "Metric ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /health-metrics/{id} [delete]
func (h *HealthHandler) Delete(c echo.Context) error {
	metricID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return notFoundError("Health metric not found")
	}

	user := auth.UserFromContext(c)
	if err := h.healthService.Delete(c.Request().Context(), user.ID, metricID); err != nil {
		return domainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
