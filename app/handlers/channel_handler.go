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

// ChannelHandlerInterface defines the contract for channel lookup handlers
type ChannelHandlerInterface interface {
	Lookup(cCtx fiber.Ctx) error
}

// ChannelHandler implements ChannelHandlerInterface
type ChannelHandler struct {
	flow      businessflow.ChannelFlow
	validator *validator.Validate
}

// NewChannelHandler creates a new channel lookup handler
func NewChannelHandler(flow businessflow.ChannelFlow) ChannelHandlerInterface {
	return &ChannelHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// ErrorResponse standard JSON error
func (h *ChannelHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
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
func (h *ChannelHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Lookup fetches live statistics for a channel from the configured provider
// @Summary Channel lookup
// @Description Fetch live channel statistics from the platform data provider
// @Tags Channels
// @Accept json
// @Produce json
// @Param request body dto.ChannelLookupRequest true "Channel coordinates"
// @Success 200 {object} dto.APIResponse{data=dto.ChannelInfoDTO} "Channel found"
// @Failure 400 {object} dto.APIResponse "Invalid request"
// @Failure 502 {object} dto.APIResponse "Provider lookup failed"
// @Failure 503 {object} dto.APIResponse "Provider not configured"
// @Router /api/v1/channels/lookup [post]
func (h *ChannelHandler) Lookup(c fiber.Ctx) error {
	var req dto.ChannelLookupRequest
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
	result, err := h.flow.Lookup(h.createRequestContext(c, "/api/v1/channels/lookup"), &req, metadata)
	if err != nil {
		if businessflow.IsChannelProviderUnavailable(err) {
			return h.ErrorResponse(c, fiber.StatusServiceUnavailable, "Channel data provider is not configured", "CHANNEL_PROVIDER_UNAVAILABLE", nil)
		}
		if businessflow.IsChannelIDRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Channel ID is required", "CHANNEL_ID_REQUIRED", nil)
		}
		log.Println("Channel lookup failed", err)
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Channel lookup failed", "CHANNEL_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Channel found", result)
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *ChannelHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}
