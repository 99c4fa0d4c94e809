// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"time"

	"github.com/kwabenaosei/Sankofa/app/dto"
	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AssessmentHandlerInterface defines the contract for tax assessment handlers
type AssessmentHandlerInterface interface {
	Create(cCtx fiber.Ctx) error
	Get(cCtx fiber.Ctx) error
	UpdateStatus(cCtx fiber.Ctx) error
	List(cCtx fiber.Ctx) error
}

// AssessmentHandler implements AssessmentHandlerInterface
type AssessmentHandler struct {
	flow      businessflow.AssessmentFlow
	validator *validator.Validate
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(flow businessflow.AssessmentFlow) AssessmentHandlerInterface {
	return &AssessmentHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// ErrorResponse standard JSON error
func (h *AssessmentHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

// SuccessResponse standard JSON success
func (h *AssessmentHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Create records a tax assessment for an influencer
// @Summary Create assessment
// @Description Record a tax assessment covering a period of taxable income
// @Tags Assessments
// @Accept json
// @Produce json
// @Param request body dto.CreateAssessmentRequest true "Assessment data"
// @Success 201 {object} dto.APIResponse{data=dto.TaxAssessmentDTO} "Assessment created"
// @Failure 400 {object} dto.APIResponse "Invalid request"
// @Failure 404 {object} dto.APIResponse "Influencer not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/assessments [post]
func (h *AssessmentHandler) Create(c fiber.Ctx) error {
	var req dto.CreateAssessmentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	metadata := collectClientMetadata(c)
	result, err := h.flow.Create(h.createRequestContext(c, "/api/v1/assessments"), &req, metadata)
	if err != nil {
		if businessflow.IsInfluencerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Influencer not found", "INFLUENCER_NOT_FOUND", nil)
		}
		if businessflow.IsTaxableIncomeRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Taxable income must be positive", "TAXABLE_INCOME_REQUIRED", nil)
		}
		if businessflow.IsTaxRateOutOfRange(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Tax rate must be between 0 and 1", "TAX_RATE_OUT_OF_RANGE", nil)
		}
		if businessflow.IsAssessmentPeriodInverted(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Assessment period start cannot be after end", "ASSESSMENT_PERIOD_INVERTED", nil)
		}
		log.Println("Assessment creation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Assessment creation failed", "ASSESSMENT_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Assessment created", result)
}

// Get returns a single assessment by ID
// @Summary Get assessment
// @Description Fetch one tax assessment by its numeric ID
// @Tags Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.APIResponse{data=dto.TaxAssessmentDTO} "Assessment found"
// @Failure 404 {object} dto.APIResponse "Assessment not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/assessments/{id} [get]
func (h *AssessmentHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid assessment ID", "INVALID_ID", nil)
	}

	result, err := h.flow.Get(h.createRequestContext(c, "/api/v1/assessments/:id"), id)
	if err != nil {
		if businessflow.IsAssessmentNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Assessment not found", "ASSESSMENT_NOT_FOUND", nil)
		}
		log.Println("Assessment fetch failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Assessment fetch failed", "ASSESSMENT_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Assessment found", result)
}

// UpdateStatus moves an assessment through its review lifecycle
// @Summary Update assessment status
// @Description Change the review status of an assessment
// @Tags Assessments
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param request body dto.UpdateAssessmentStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.TaxAssessmentDTO} "Status updated"
// @Failure 400 {object} dto.APIResponse "Invalid status"
// @Failure 404 {object} dto.APIResponse "Assessment not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/assessments/{id}/status [put]
func (h *AssessmentHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid assessment ID", "INVALID_ID", nil)
	}

	var req dto.UpdateAssessmentStatusRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	metadata := collectClientMetadata(c)
	result, err := h.flow.UpdateStatus(h.createRequestContext(c, "/api/v1/assessments/:id/status"), id, &req, metadata)
	if err != nil {
		if businessflow.IsAssessmentNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Assessment not found", "ASSESSMENT_NOT_FOUND", nil)
		}
		if businessflow.IsInvalidAssessmentStatus(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid assessment status", "INVALID_ASSESSMENT_STATUS", nil)
		}
		log.Println("Assessment status update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Assessment status update failed", "ASSESSMENT_STATUS_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Status updated", result)
}

// List returns a filtered page of assessments
// @Summary List assessments
// @Description List tax assessments with optional influencer and status filters
// @Tags Assessments
// @Produce json
// @Param influencer_id query int false "Influencer filter"
// @Param status query string false "Status filter" Enums(draft, pending, approved, disputed)
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListAssessmentsResponse} "Assessments listed"
// @Failure 400 {object} dto.APIResponse "Invalid filters"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/assessments [get]
func (h *AssessmentHandler) List(c fiber.Ctx) error {
	var req dto.ListAssessmentsRequest
	if err := c.Bind().Query(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.flow.List(h.createRequestContext(c, "/api/v1/assessments"), &req)
	if err != nil {
		log.Println("Assessment listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Assessment listing failed", "ASSESSMENT_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Assessments listed", result)
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *AssessmentHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}
