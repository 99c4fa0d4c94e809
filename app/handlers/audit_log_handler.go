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

// AuditLogHandlerInterface defines the contract for audit trail handlers
type AuditLogHandlerInterface interface {
	List(cCtx fiber.Ctx) error
}

// AuditLogHandler implements AuditLogHandlerInterface
type AuditLogHandler struct {
	flow      businessflow.AuditLogFlow
	validator *validator.Validate
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(flow businessflow.AuditLogFlow) AuditLogHandlerInterface {
	return &AuditLogHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// ErrorResponse standard JSON error
func (h *AuditLogHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
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
func (h *AuditLogHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns the audit trail, newest first
// @Summary List audit logs
// @Description Audit trail entries with optional entity filters
// @Tags Audit
// @Produce json
// @Param entity_type query string false "Entity type filter" Enums(influencer, assessment, report, officer)
// @Param entity_id query string false "Entity ID filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.ListAuditLogsResponse} "Audit logs listed"
// @Failure 400 {object} dto.APIResponse "Invalid filters"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/audit-logs [get]
func (h *AuditLogHandler) List(c fiber.Ctx) error {
	var req dto.ListAuditLogsRequest
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

	result, err := h.flow.List(h.createRequestContext(c, "/api/v1/audit-logs"), &req)
	if err != nil {
		log.Println("Audit log listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Audit log listing failed", "AUDIT_LOG_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Audit logs listed", result)
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *AuditLogHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}
