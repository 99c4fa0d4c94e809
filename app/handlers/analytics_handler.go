// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"time"

	"github.com/kwabenaosei/Sankofa/app/dto"
	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/gofiber/fiber/v3"
)

// AnalyticsHandlerInterface defines the contract for dashboard analytics handlers
type AnalyticsHandlerInterface interface {
	Overview(cCtx fiber.Ctx) error
	DashboardMetrics(cCtx fiber.Ctx) error
	PlatformDistribution(cCtx fiber.Ctx) error
	RegionalDistribution(cCtx fiber.Ctx) error
	ComplianceBreakdown(cCtx fiber.Ctx) error
	TopInfluencers(cCtx fiber.Ctx) error
	MonthlyRevenue(cCtx fiber.Ctx) error
}

// AnalyticsHandler implements AnalyticsHandlerInterface
type AnalyticsHandler struct {
	flow businessflow.AnalyticsFlow
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(flow businessflow.AnalyticsFlow) AnalyticsHandlerInterface {
	return &AnalyticsHandler{flow: flow}
}

// ErrorResponse standard JSON error
func (h *AnalyticsHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
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
func (h *AnalyticsHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Overview returns the full dashboard payload in one call
// @Summary Analytics overview
// @Description Dashboard metrics, distributions, top influencers and monthly series in one response
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AnalyticsOverviewResponse} "Overview computed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c fiber.Ctx) error {
	result, err := h.flow.Overview(h.createRequestContext(c, "/api/v1/analytics/overview"))
	if err != nil {
		log.Println("Analytics overview failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Analytics overview failed", "ANALYTICS_OVERVIEW_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Overview computed", result)
}

// DashboardMetrics returns headline registry totals
// @Summary Dashboard metrics
// @Description Headline totals for the dashboard cards
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardMetricsDTO} "Metrics computed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/analytics/metrics [get]
func (h *AnalyticsHandler) DashboardMetrics(c fiber.Ctx) error {
	result, err := h.flow.DashboardMetrics(h.createRequestContext(c, "/api/v1/analytics/metrics"))
	if err != nil {
		log.Println("Dashboard metrics failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Dashboard metrics failed", "DASHBOARD_METRICS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Metrics computed", result)
}

// PlatformDistribution returns influencer counts per platform
// @Summary Platform distribution
// @Description Influencer counts for the platform pie chart
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.PlatformSliceDTO} "Distribution computed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/analytics/platforms [get]
func (h *AnalyticsHandler) PlatformDistribution(c fiber.Ctx) error {
	result, err := h.flow.PlatformDistribution(h.createRequestContext(c, "/api/v1/analytics/platforms"))
	if err != nil {
		log.Println("Platform distribution failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Platform distribution failed", "PLATFORM_DISTRIBUTION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Distribution computed", result)
}

// RegionalDistribution returns influencer counts per region
// @Summary Regional distribution
// @Description Influencer counts per Ghanaian region, most populous first
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.RegionCountDTO} "Distribution computed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/analytics/regions [get]
func (h *AnalyticsHandler) RegionalDistribution(c fiber.Ctx) error {
	result, err := h.flow.RegionalDistribution(h.createRequestContext(c, "/api/v1/analytics/regions"))
	if err != nil {
		log.Println("Regional distribution failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Regional distribution failed", "REGIONAL_DISTRIBUTION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Distribution computed", result)
}

// ComplianceBreakdown returns counts per compliance status
// @Summary Compliance breakdown
// @Description Influencer counts per compliance status, zero-filled
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ComplianceSliceDTO} "Breakdown computed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/analytics/compliance [get]
func (h *AnalyticsHandler) ComplianceBreakdown(c fiber.Ctx) error {
	result, err := h.flow.ComplianceBreakdown(h.createRequestContext(c, "/api/v1/analytics/compliance"))
	if err != nil {
		log.Println("Compliance breakdown failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Compliance breakdown failed", "COMPLIANCE_BREAKDOWN_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Breakdown computed", result)
}

// TopInfluencers returns the revenue ranking
// @Summary Top influencers
// @Description Up to ten influencers ranked by estimated annual revenue
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InfluencerDTO} "Ranking computed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/analytics/top-influencers [get]
func (h *AnalyticsHandler) TopInfluencers(c fiber.Ctx) error {
	result, err := h.flow.TopInfluencers(h.createRequestContext(c, "/api/v1/analytics/top-influencers"))
	if err != nil {
		log.Println("Top influencers failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Top influencers failed", "TOP_INFLUENCERS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Ranking computed", result)
}

// MonthlyRevenue returns the monthly revenue series
// @Summary Monthly revenue
// @Description Monthly revenue series; empty until platform earnings feeds land
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.MonthlyRevenuePointDTO} "Series computed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/analytics/monthly-revenue [get]
func (h *AnalyticsHandler) MonthlyRevenue(c fiber.Ctx) error {
	result, err := h.flow.MonthlyRevenue(h.createRequestContext(c, "/api/v1/analytics/monthly-revenue"))
	if err != nil {
		log.Println("Monthly revenue failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Monthly revenue failed", "MONTHLY_REVENUE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Series computed", result)
}

// createRequestContext mirrors other handlers for request-scoped values
func (h *AnalyticsHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}
