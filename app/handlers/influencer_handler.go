// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/kwabenaosei/Sankofa/app/dto"
	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/kwabenaosei/Sankofa/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// InfluencerHandlerInterface defines the contract for influencer registry handlers
type InfluencerHandlerInterface interface {
	Create(cCtx fiber.Ctx) error
	Get(cCtx fiber.Ctx) error
	Update(cCtx fiber.Ctx) error
	Delete(cCtx fiber.Ctx) error
	List(cCtx fiber.Ctx) error
	Search(cCtx fiber.Ctx) error
	Stats(cCtx fiber.Ctx) error
}

// InfluencerHandler implements InfluencerHandlerInterface
type InfluencerHandler struct {
	flow      businessflow.InfluencerFlow
	validator *validator.Validate
}

// NewInfluencerHandler creates a new influencer handler
func NewInfluencerHandler(flow businessflow.InfluencerFlow) InfluencerHandlerInterface {
	return &InfluencerHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// ErrorResponse standard JSON error
func (h *InfluencerHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
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
func (h *InfluencerHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Create registers a new influencer
// @Summary Register influencer
// @Description Register a new influencer on the tax registry
// @Tags Influencers
// @Accept json
// @Produce json
// @Param request body dto.CreateInfluencerRequest true "Influencer data"
// @Success 201 {object} dto.APIResponse{data=dto.InfluencerDTO} "Influencer registered"
// @Failure 400 {object} dto.APIResponse "Invalid request"
// @Failure 409 {object} dto.APIResponse "Handle already registered"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/influencers [post]
func (h *InfluencerHandler) Create(c fiber.Ctx) error {
	var req dto.CreateInfluencerRequest
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
	result, err := h.flow.Create(h.createRequestContext(c, "/api/v1/influencers"), &req, metadata)
	if err != nil {
		if businessflow.IsHandleAlreadyExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Handle already registered on this platform", "HANDLE_ALREADY_EXISTS", nil)
		}
		if businessflow.IsInvalidPlatform(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Platform must be youtube or tiktok", "INVALID_PLATFORM", nil)
		}
		if businessflow.IsUnknownRegion(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Region is not a recognized Ghanaian region", "UNKNOWN_REGION", nil)
		}
		log.Println("Influencer registration failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Influencer registration failed", "INFLUENCER_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Influencer registered", result)
}

// Get returns a single influencer by ID
// @Summary Get influencer
// @Description Fetch one influencer by its numeric ID
// @Tags Influencers
// @Produce json
// @Param id path int true "Influencer ID"
// @Success 200 {object} dto.APIResponse{data=dto.InfluencerDTO} "Influencer found"
// @Failure 404 {object} dto.APIResponse "Influencer not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/influencers/{id} [get]
func (h *InfluencerHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid influencer ID", "INVALID_ID", nil)
	}

	result, err := h.flow.Get(h.createRequestContext(c, "/api/v1/influencers/:id"), id)
	if err != nil {
		if businessflow.IsInfluencerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Influencer not found", "INFLUENCER_NOT_FOUND", nil)
		}
		log.Println("Influencer fetch failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Influencer fetch failed", "INFLUENCER_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Influencer found", result)
}

// Update applies a partial update to an influencer
// @Summary Update influencer
// @Description Update registry fields for an influencer; absent fields are left unchanged
// @Tags Influencers
// @Accept json
// @Produce json
// @Param id path int true "Influencer ID"
// @Param request body dto.UpdateInfluencerRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.InfluencerDTO} "Influencer updated"
// @Failure 400 {object} dto.APIResponse "Invalid request"
// @Failure 404 {object} dto.APIResponse "Influencer not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/influencers/{id} [put]
func (h *InfluencerHandler) Update(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid influencer ID", "INVALID_ID", nil)
	}

	var req dto.UpdateInfluencerRequest
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
	result, err := h.flow.Update(h.createRequestContext(c, "/api/v1/influencers/:id"), id, &req, metadata)
	if err != nil {
		if businessflow.IsInfluencerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Influencer not found", "INFLUENCER_NOT_FOUND", nil)
		}
		if businessflow.IsUpdateFieldsRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "At least one field must be provided", "UPDATE_FIELDS_REQUIRED", nil)
		}
		if businessflow.IsInvalidComplianceStatus(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid compliance status", "INVALID_COMPLIANCE_STATUS", nil)
		}
		if businessflow.IsUnknownRegion(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Region is not a recognized Ghanaian region", "UNKNOWN_REGION", nil)
		}
		log.Println("Influencer update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Influencer update failed", "INFLUENCER_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Influencer updated", result)
}

// Delete removes an influencer and its assessments
// @Summary Delete influencer
// @Description Remove an influencer from the registry along with its tax assessments
// @Tags Influencers
// @Produce json
// @Param id path int true "Influencer ID"
// @Success 200 {object} dto.APIResponse "Influencer deleted"
// @Failure 404 {object} dto.APIResponse "Influencer not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/influencers/{id} [delete]
func (h *InfluencerHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid influencer ID", "INVALID_ID", nil)
	}

	metadata := collectClientMetadata(c)
	if err := h.flow.Delete(h.createRequestContext(c, "/api/v1/influencers/:id"), id, metadata); err != nil {
		if businessflow.IsInfluencerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Influencer not found", "INFLUENCER_NOT_FOUND", nil)
		}
		log.Println("Influencer deletion failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Influencer deletion failed", "INFLUENCER_DELETE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Influencer deleted", nil)
}

// List returns a filtered page of influencers
// @Summary List influencers
// @Description List influencers with optional platform, compliance status and region filters
// @Tags Influencers
// @Produce json
// @Param platform query string false "Platform filter" Enums(youtube, tiktok)
// @Param compliance_status query string false "Compliance status filter"
// @Param region query string false "Region filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListInfluencersResponse} "Influencers listed"
// @Failure 400 {object} dto.APIResponse "Invalid filters"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/influencers [get]
func (h *InfluencerHandler) List(c fiber.Ctx) error {
	var req dto.ListInfluencersRequest
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

	result, err := h.flow.List(h.createRequestContext(c, "/api/v1/influencers"), &req)
	if err != nil {
		log.Println("Influencer listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Influencer listing failed", "INFLUENCER_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Influencers listed", result)
}

// Search finds influencers by name
// @Summary Search influencers
// @Description Case-insensitive substring search over influencer names
// @Tags Influencers
// @Produce json
// @Param q query string true "Search term"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListInfluencersResponse} "Search results"
// @Failure 400 {object} dto.APIResponse "Missing search term"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/influencers/search [get]
func (h *InfluencerHandler) Search(c fiber.Ctx) error {
	var req dto.SearchInfluencersRequest
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

	result, err := h.flow.Search(h.createRequestContext(c, "/api/v1/influencers/search"), &req)
	if err != nil {
		log.Println("Influencer search failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Influencer search failed", "INFLUENCER_SEARCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Search results", result)
}

// Stats returns registry-wide summary figures
// @Summary Influencer statistics
// @Description Summary counts and totals for the registry header
// @Tags Influencers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.InfluencerStatsDTO} "Statistics computed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/influencers/stats [get]
func (h *InfluencerHandler) Stats(c fiber.Ctx) error {
	result, err := h.flow.Stats(h.createRequestContext(c, "/api/v1/influencers/stats"))
	if err != nil {
		log.Println("Influencer stats failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Influencer stats failed", "INFLUENCER_STATS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Statistics computed", result)
}

// parseIDParam reads the numeric :id path parameter
func parseIDParam(c fiber.Ctx) (uint, error) {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *InfluencerHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)
	return ctx
}
