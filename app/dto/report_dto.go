// Package dto
package dto

// Report format identifiers accepted by the report endpoints
const (
	ReportFormatTaxSummary         = "tax-summary"
	ReportFormatComplianceOverview = "compliance-overview"
	ReportFormatInfluencerList     = "influencer-list"
	ReportFormatRevenueAnalysis    = "revenue-analysis"
)

// GenerateReportRequest selects which plain-text report to render
type GenerateReportRequest struct {
	Format string `json:"format" validate:"required,oneof=tax-summary compliance-overview influencer-list revenue-analysis" example:"tax-summary"`
}

// GenerateReportResponse carries the rendered report body and its download name
type GenerateReportResponse struct {
	Filename    string `json:"filename" example:"tax-summary-2025-06-01.txt"`
	ContentType string `json:"content_type" example:"text/plain; charset=utf-8"`
	Body        string `json:"body"`
	GeneratedAt string `json:"generated_at" example:"2025-06-01T09:00:00Z"`
}
