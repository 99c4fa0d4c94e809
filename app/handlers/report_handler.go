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

// ReportHandlerInterface defines the contract for report handlers
type ReportHandlerInterface interface {
	Generate(cCtx fiber.Ctx) error
	Download(cCtx fiber.Ctx) error
	ExportRegistryExcel(cCtx fiber.Ctx) error
}

// ReportHandler implements ReportHandlerInterface
type ReportHandler struct {
	flow      businessflow.ReportFlow
	validator *validator.Validate
}

// NewReportHandler creates a new report handler
func NewReportHandler(flow businessflow.ReportFlow) ReportHandlerInterface {
	return &ReportHandler{
		flow:      flow,
		validator: validator.New(),
	}
}

// ErrorResponse standard JSON error
func (h *ReportHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
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
func (h *ReportHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Generate renders a plain-text report and returns it as JSON
// @Summary Generate report
// @Description Render one of the plain-text reports and return its body and filename
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body dto.GenerateReportRequest true "Report format"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateReportResponse} "Report generated"
// @Failure 400 {object} dto.APIResponse "Unknown report format"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/reports [post]
func (h *ReportHandler) Generate(c fiber.Ctx) error {
	var req dto.GenerateReportRequest
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
	result, err := h.flow.Generate(h.createRequestContext(c, "/api/v1/reports"), &req, metadata)
	if err != nil {
		if businessflow.IsUnknownReportFormat(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown report format", "UNKNOWN_REPORT_FORMAT", nil)
		}
		log.Println("Report generation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Report generation failed", "REPORT_GENERATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Report generated", result)
}

// Download renders a plain-text report and streams it as a file attachment
// @Summary Download report
// @Description Render a plain-text report and return it as a downloadable file
// @Tags Reports
// @Produce plain
// @Param format path string true "Report format" Enums(tax-summary, compliance-overview, influencer-list, revenue-analysis)
// @Success 200 {string} string "Report body"
// @Failure 400 {object} dto.APIResponse "Unknown report format"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/reports/{format}/download [get]
func (h *ReportHandler) Download(c fiber.Ctx) error {
	req := dto.GenerateReportRequest{Format: c.Params("format")}
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown report format", "UNKNOWN_REPORT_FORMAT", nil)
	}

	metadata := collectClientMetadata(c)
	result, err := h.flow.Generate(h.createRequestContext(c, "/api/v1/reports/:format/download"), &req, metadata)
	if err != nil {
		if businessflow.IsUnknownReportFormat(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Unknown report format", "UNKNOWN_REPORT_FORMAT", nil)
		}
		log.Println("Report download failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Report download failed", "REPORT_DOWNLOAD_FAILED", nil)
	}

	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.SendString(result.Body)
}

// ExportRegistryExcel streams the full registry as an Excel workbook
// @Summary Export registry workbook
// @Description Export every registered influencer as an Excel workbook
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Workbook"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/reports/registry.xlsx [get]
func (h *ReportHandler) ExportRegistryExcel(c fiber.Ctx) error {
	metadata := collectClientMetadata(c)
	filename, body, err := h.flow.ExportRegistryExcel(h.createRequestContext(c, "/api/v1/reports/registry.xlsx"), metadata)
	if err != nil {
		log.Println("Registry export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Registry export failed", "REGISTRY_EXPORT_FAILED", nil)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *ReportHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 60*time.Second)
}
