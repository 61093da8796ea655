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

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// FitnessHandler handles workout record endpoints.
type FitnessHandler struct {
	fitnessService service.FitnessService
}

// NewFitnessHandler creates a new fitness record handler.
func NewFitnessHandler(fitnessService service.FitnessService) *FitnessHandler {
	return &FitnessHandler{fitnessService: fitnessService}
}

// ListFitnessRecordsRequest holds the supported list query parameters.
type ListFitnessRecordsRequest struct {
	StartDate   *model.Date `query:"start_date"`
	EndDate     *model.Date `query:"end_date"`
	WorkoutType string      `query:"workout_type"`
	Limit       *int        `query:"limit"`
	Offset      int         `query:"offset"`
}

// List godoc
// @Summary List fitness records for the current user
// @Tags fitness-records
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param end_date query string false "Filter by end date (YYYY-MM-DD)"
// @Param workout_type query string false "Filter by workout type"
// @Param limit query int false "Maximum records to return (1-1000, default 100)"
// @Param offset query int false "Number of records to skip"
// @Success 200 {array} model.FitnessRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /fitness-records [get]
func (h *FitnessHandler) List(c echo.Context) error {
	var req ListFitnessRecordsRequest
	if err := c.Bind(&req); err != nil {
		return validationError(err.Error())
	}

	limit, offset, err := paginationBounds(req.Limit, req.Offset)
	if err != nil {
		return err
	}

	user := auth.UserFromContext(c)
	records, svcErr := h.fitnessService.List(c.Request().Context(), user.ID, repository.FitnessRecordFilter{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		WorkoutType: req.WorkoutType,
		Limit:       limit,
		Offset:      offset,
	})
	if svcErr != nil {
		return domainError(c, svcErr)
	}

	return c.JSON(http.StatusOK, records)
}

// Create godoc
// @Summary Create a new fitness record
// @Tags fitness-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateFitnessRecordInput true "Record data"
// @Success 201 {object} model.FitnessRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /fitness-records [post]
func (h *FitnessHandler) Create(c echo.Context) error {
	var input service.CreateFitnessRecordInput
	if err := c.Bind(&input); err != nil {
		return validationError("invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return validationError(err.Error())
	}

	user := auth.UserFromContext(c)
	record, err := h.fitnessService.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusCreated, record)
}

// Get godoc
// @Summary Get a fitness record by ID
// @Tags fitness-records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} model.FitnessRecord
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /fitness-records/{id} [get]
func (h *FitnessHandler) Get(c echo.Context) error {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return notFoundError("Fitness record not found")
	}

	user := auth.UserFromContext(c)
	record, err := h.fitnessService.Get(c.Request().Context(), user.ID, recordID)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

// Update godoc
// @Summary Partially update a fitness record
// @Tags fitness-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body service.FitnessRecordPatch true "Fields to change"
// @Success 200 {object} model.FitnessRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /fitness-records/{id} [put]
func (h *FitnessHandler) Update(c echo.Context) error {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return notFoundError("Fitness record not found")
	}

	var patch service.FitnessRecordPatch
	if err := c.Bind(&patch); err != nil {
		return validationError("invalid request body")
	}
	if err := c.Validate(&patch); err != nil {
		return validationError(err.Error())
	}

	user := auth.UserFromContext(c)
	record, svcErr := h.fitnessService.Update(c.Request().Context(), user.ID, recordID, patch)
	if svcErr != nil {
		return domainError(c, svcErr)
	}

	return c.JSON(http.StatusOK, record)
}

// Delete godoc
// @Summary Delete a fitness record
// @Tags fitness-records
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /fitness-records/{id} [delete]
func (h *FitnessHandler) Delete(c echo.Context) error {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return notFoundError("Fitness record not found")
	}

	user := auth.UserFromContext(c)
	if err := h.fitnessService.Delete(c.Request().Context(), user.ID, recordID); err != nil {
		return domainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// paginationBounds validates limit/offset and applies the defaults.
func paginationBounds(limit *int, offset int) (int, int, *echo.HTTPError) {
	resolved := defaultListLimit
	if limit != nil {
		if *limit < 1 || *limit > maxListLimit {
			return 0, 0, validationError("limit must be between 1 and 1000")
		}
		resolved = *limit
	}
	if offset < 0 {
		return 0, 0, validationError("offset must not be negative")
	}
	return resolved, offset, nil
}
