// Package businessflow contains the core business logic and use cases for registry workflows
package businessflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
	"github.com/kwabenaosei/Sankofa/utils"
)

// ReportFlow renders the downloadable registry reports
type ReportFlow interface {
	Generate(ctx context.Context, req *dto.GenerateReportRequest, metadata *ClientMetadata) (*dto.GenerateReportResponse, error)
	ExportRegistryExcel(ctx context.Context, metadata *ClientMetadata) (string, []byte, error)
}

// ReportFlowImpl implements the report business flow
type ReportFlowImpl struct {
	influencerRepo repository.InfluencerRepository
	assessmentRepo repository.TaxAssessmentRepository
	auditRepo      repository.AuditLogRepository
}

// NewReportFlow creates a new report flow instance
func NewReportFlow(
	influencerRepo repository.InfluencerRepository,
	assessmentRepo repository.TaxAssessmentRepository,
	auditRepo repository.AuditLogRepository,
) ReportFlow {
	return &ReportFlowImpl{
		influencerRepo: influencerRepo,
		assessmentRepo: assessmentRepo,
		auditRepo:      auditRepo,
	}
}

const reportRule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Generate renders one of the four plain-text reports from a registry snapshot
func (f *ReportFlowImpl) Generate(ctx context.Context, req *dto.GenerateReportRequest, metadata *ClientMetadata) (*dto.GenerateReportResponse, error) {
	if req == nil {
		return nil, NewBusinessError("REPORT_VALIDATION_FAILED", "Report validation failed", ErrUnknownReportFormat)
	}

	influencers, err := f.influencerRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("REPORT_SNAPSHOT_FAILED", "Failed to load influencer snapshot", err)
	}
	assessments, err := f.assessmentRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("REPORT_SNAPSHOT_FAILED", "Failed to load assessment snapshot", err)
	}

	var body string
	switch req.Format {
	case dto.ReportFormatTaxSummary:
		body = f.renderTaxSummary(influencers, assessments)
	case dto.ReportFormatComplianceOverview:
		body = f.renderComplianceOverview(influencers)
	case dto.ReportFormatInfluencerList:
		body = f.renderInfluencerList(influencers)
	case dto.ReportFormatRevenueAnalysis:
		body = f.renderRevenueAnalysis(influencers)
	default:
		return nil, NewBusinessError("REPORT_UNKNOWN_FORMAT", "Unknown report format", ErrUnknownReportFormat)
	}

	filename := fmt.Sprintf("gra-%s-%s.txt", req.Format, utils.UTCNowFormat("2006-01-02"))

	_ = f.auditRepo.Save(ctx, buildAuditLog(models.AuditActionReportGenerated, models.AuditEntityReport,
		nil, fmt.Sprintf("Generated %s report", req.Format), metadata))

	return &dto.GenerateReportResponse{
		Filename:    filename,
		ContentType: "text/plain; charset=utf-8",
		Body:        body,
		GeneratedAt: utils.UTCNowRFC3339(),
	}, nil
}

// ExportRegistryExcel renders the full registry as an Excel workbook
func (f *ReportFlowImpl) ExportRegistryExcel(ctx context.Context, metadata *ClientMetadata) (string, []byte, error) {
	influencers, err := f.influencerRepo.ListAll(ctx)
	if err != nil {
		return "", nil, NewBusinessError("REPORT_SNAPSHOT_FAILED", "Failed to load influencer snapshot", err)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Registry"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{"id", "name", "platform", "handle", "region", "compliance_status", "compliance_score", "risk_level", "subscribers", "estimated_annual_revenue", "tax_liability", "tax_id_number", "last_assessed_at", "created_at"}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	for ri, inf := range influencers {
		lastAssessed := ""
		if s := formatTimePtr(inf.LastAssessedAt); s != nil {
			lastAssessed = *s
		}
		record := []any{
			inf.ID,
			inf.Name,
			inf.Platform.String(),
			inf.Handle,
			inf.RegionOrUnknown(),
			inf.EffectiveComplianceStatus().String(),
			utils.Float64OrZero(inf.ComplianceScore),
			string(ClassifyComplianceRisk(inf.ComplianceScore)),
			utils.Float64OrZero(inf.Subscribers),
			inf.AnnualRevenueOrZero(),
			inf.TaxLiabilityOrZero(),
			utils.StringOr(inf.TaxIDNumber, ""),
			lastAssessed,
			inf.CreatedAt.UTC().Format("2006-01-02"),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(sheet, cellRef, &record)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	_ = f.auditRepo.Save(ctx, buildAuditLog(models.AuditActionReportGenerated, models.AuditEntityReport,
		nil, "Exported registry as Excel workbook", metadata))

	filename := fmt.Sprintf("gra-registry-%s.xlsx", utils.UTCNowFormat("2006-01-02"))
	return filename, buf.Bytes(), nil
}

// reportHeader renders the shared letterhead
func (f *ReportFlowImpl) reportHeader() string {
	return fmt.Sprintf(`
GHANA REVENUE AUTHORITY
Influencer Tax Liability Dashboard
%s
Generated: %s
%s

`, reportRule, utils.AccraNow().Format("January 2, 2006"), reportRule)
}

func (f *ReportFlowImpl) renderTaxSummary(influencers []*models.Influencer, assessments []*models.TaxAssessment) string {
	m := ComputeDashboardMetrics(influencers, assessments)
	return fmt.Sprintf(`%sTAX SUMMARY REPORT

Total Registered Influencers: %d
Total Estimated Revenue: GH₵%s
Total Tax Liability: GH₵%s
Compliance Rate: %d%%
Pending Assessments: %d
Approved Assessments: %d
Disputed Assessments: %d
`, f.reportHeader(), m.TotalInfluencers, formatCedis(m.TotalEstimatedRevenue), formatCedis(m.TotalTaxLiability),
		m.ComplianceRate, m.PendingAssessments, m.ApprovedAssessments, m.DisputedAssessments)
}

func (f *ReportFlowImpl) renderComplianceOverview(influencers []*models.Influencer) string {
	breakdown := ComputeComplianceBreakdown(influencers)

	var sb strings.Builder
	sb.WriteString(f.reportHeader())
	sb.WriteString("COMPLIANCE OVERVIEW\n\nStatus Breakdown:\n")
	for _, slice := range breakdown {
		sb.WriteString(fmt.Sprintf("  %-16s %d influencer(s)\n", strings.ToUpper(slice.Status), slice.Count))
	}
	return sb.String()
}

func (f *ReportFlowImpl) renderInfluencerList(influencers []*models.Influencer) string {
	var sb strings.Builder
	sb.WriteString(f.reportHeader())
	sb.WriteString("INFLUENCER REGISTRY\n\n")
	sb.WriteString(fmt.Sprintf("Total Records: %d\n\n", len(influencers)))
	sb.WriteString(fmt.Sprintf("%-25s %-10s %-20s %-15s Est. Revenue\n", "Name", "Platform", "Handle", "Status"))
	sb.WriteString(strings.Repeat("─", 90) + "\n")
	for _, inf := range influencers {
		sb.WriteString(fmt.Sprintf("%-25s %-10s @%-19s %-15s GH₵%s\n",
			inf.Name, inf.Platform, strings.TrimPrefix(inf.Handle, "@"),
			inf.EffectiveComplianceStatus(), formatCedis(inf.AnnualRevenueOrZero())))
	}
	return sb.String()
}

func (f *ReportFlowImpl) renderRevenueAnalysis(influencers []*models.Influencer) string {
	var youtubeRev, tiktokRev float64
	for _, inf := range influencers {
		switch inf.Platform {
		case models.PlatformYouTube:
			youtubeRev += inf.AnnualRevenueOrZero()
		case models.PlatformTikTok:
			tiktokRev += inf.AnnualRevenueOrZero()
		}
	}

	return fmt.Sprintf(`%sREVENUE ANALYSIS

By Platform:
  YouTube:  GH₵%s
  TikTok:   GH₵%s
  Total:    GH₵%s
`, f.reportHeader(), formatCedis(youtubeRev), formatCedis(tiktokRev), formatCedis(youtubeRev+tiktokRev))
}

// formatCedis renders an amount with thousands separators, dropping the
// fraction for whole amounts the way the dashboard displays currency.
func formatCedis(amount float64) string {
	p := message.NewPrinter(language.English)
	if amount == float64(int64(amount)) {
		return p.Sprintf("%d", int64(amount))
	}
	return p.Sprintf("%.2f", amount)
}
