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

// AuthHandlerInterface defines the contract for officer auth handlers
type AuthHandlerInterface interface {
	InitCaptcha(cCtx fiber.Ctx) error
	VerifyLogin(cCtx fiber.Ctx) error
}

// AuthHandler implements AuthHandlerInterface
type AuthHandler struct {
	flow      businessflow.OfficerAuthFlow
	validator *validator.Validate
}

// NewAuthHandler creates a new officer auth handler
func NewAuthHandler(flow businessflow.OfficerAuthFlow) AuthHandlerInterface {
	return &AuthHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// ErrorResponse standard JSON error
func (h *AuthHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
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
func (h *AuthHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// InitCaptcha starts the officer login by returning a rotate captcha challenge
// @Summary Officer captcha init
// @Description Initialize rotate captcha for officer login (returns base64 images and challenge ID)
// @Tags Authentication
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.OfficerCaptchaInitResponse} "Captcha initialized"
// @Failure 500 {object} dto.APIResponse "Failed to initialize captcha"
// @Router /api/v1/auth/captcha/init [get]
func (h *AuthHandler) InitCaptcha(c fiber.Ctx) error {
	resp, err := h.flow.InitCaptcha(h.createRequestContext(c, "/api/v1/auth/captcha/init"))
	if err != nil {
		log.Println("Officer captcha init failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Captcha init failed", "CAPTCHA_INIT_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Captcha initialized", resp)
}

// VerifyLogin completes officer login by verifying captcha and credentials
// @Summary Officer login
// @Description Verify captcha and authenticate an officer with username/password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.OfficerLoginRequest true "Officer login data"
// @Success 200 {object} dto.APIResponse{data=dto.OfficerLoginResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Invalid request or captcha"
// @Failure 401 {object} dto.APIResponse "Incorrect credentials or officer not found"
// @Failure 403 {object} dto.APIResponse "Officer inactive"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) VerifyLogin(c fiber.Ctx) error {
	var req dto.OfficerLoginRequest
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
	result, err := h.flow.Login(h.createRequestContext(c, "/api/v1/auth/login"), &req, metadata)
	if err != nil {
		if businessflow.IsInvalidCaptcha(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid captcha", "INVALID_CAPTCHA", nil)
		}
		if businessflow.IsOfficerNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Officer not found", "OFFICER_NOT_FOUND", nil)
		}
		if businessflow.IsOfficerInactive(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Officer inactive", "OFFICER_INACTIVE", nil)
		}
		if businessflow.IsIncorrectPassword(err) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Incorrect password", "INCORRECT_PASSWORD", nil)
		}
		log.Println("Officer login failed", err)
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Login failed", "LOGIN_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Login successful", result)
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *AuthHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}
