// Package businessflow contains the core business logic and use cases for registry workflows
package businessflow

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
	"github.com/kwabenaosei/Sankofa/utils"
)

// AssessmentFlow handles the tax assessment lifecycle
type AssessmentFlow interface {
	Create(ctx context.Context, req *dto.CreateAssessmentRequest, metadata *ClientMetadata) (*dto.TaxAssessmentDTO, error)
	UpdateStatus(ctx context.Context, assessmentID uint, req *dto.UpdateAssessmentStatusRequest, metadata *ClientMetadata) (*dto.TaxAssessmentDTO, error)
	Get(ctx context.Context, assessmentID uint) (*dto.TaxAssessmentDTO, error)
	List(ctx context.Context, req *dto.ListAssessmentsRequest) (*dto.ListAssessmentsResponse, error)
}

// AssessmentFlowImpl implements the tax assessment business flow
type AssessmentFlowImpl struct {
	assessmentRepo repository.TaxAssessmentRepository
	influencerRepo repository.InfluencerRepository
	auditRepo      repository.AuditLogRepository
	db             *gorm.DB
}

// NewAssessmentFlow creates a new assessment flow instance
func NewAssessmentFlow(
	assessmentRepo repository.TaxAssessmentRepository,
	influencerRepo repository.InfluencerRepository,
	auditRepo repository.AuditLogRepository,
	db *gorm.DB,
) AssessmentFlow {
	return &AssessmentFlowImpl{
		assessmentRepo: assessmentRepo,
		influencerRepo: influencerRepo,
		auditRepo:      auditRepo,
		db:             db,
	}
}

// Create records a new assessment for an influencer. The tax amount is the
// taxable income times the rate, rounded to the nearest cedi; the rate
// defaults to the flat rate when omitted. The influencer's last-assessed
// timestamp is stamped in the same transaction.
func (f *AssessmentFlowImpl) Create(ctx context.Context, req *dto.CreateAssessmentRequest, metadata *ClientMetadata) (*dto.TaxAssessmentDTO, error) {
	periodStart, periodEnd, err := f.validateCreateRequest(req)
	if err != nil {
		return nil, NewBusinessError("ASSESSMENT_VALIDATION_FAILED", "Assessment validation failed", err)
	}

	influencer, err := f.influencerRepo.ByID(ctx, req.InfluencerID)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_LOOKUP_FAILED", "Failed to lookup influencer", err)
	}
	if influencer == nil {
		return nil, NewBusinessError("INFLUENCER_NOT_FOUND", "Influencer not found", ErrInfluencerNotFound)
	}

	rate := req.TaxRate
	if rate == 0 {
		rate = utils.FlatTaxRate
	}

	now := utils.UTCNow()
	assessment := &models.TaxAssessment{
		UUID:                  uuid.New(),
		InfluencerID:          req.InfluencerID,
		AssessmentDate:        now,
		AssessmentPeriodStart: periodStart,
		AssessmentPeriodEnd:   periodEnd,
		TaxableIncome:         req.TaxableIncome,
		TaxRate:               rate,
		TaxAmount:             math.Round(req.TaxableIncome * rate),
		Status:                models.AssessmentStatusPending,
		Notes:                 req.Notes,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if metadata != nil {
		if actor := metadata.Additional["actor_name"]; actor != "" {
			assessment.AssessedBy = &actor
		}
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.assessmentRepo.Save(txCtx, assessment); err != nil {
			return fmt.Errorf("failed to save assessment: %w", err)
		}
		if err := f.influencerRepo.UpdateFields(txCtx, req.InfluencerID, map[string]any{
			"last_assessed_at": now,
		}); err != nil {
			return err
		}
		return f.createAuditLog(txCtx, models.AuditActionAssessmentCreated,
			utils.ToPtr(fmt.Sprintf("%d", assessment.ID)),
			fmt.Sprintf("Assessed %s: income %.2f %s at rate %.2f", influencer.Name, req.TaxableIncome, utils.CediCurrency, rate),
			metadata)
	})
	if err != nil {
		return nil, NewBusinessError("ASSESSMENT_CREATE_FAILED", "Failed to record assessment", err)
	}

	assessment.Influencer = influencer
	result := ToTaxAssessmentDTO(*assessment)
	return &result, nil
}

// UpdateStatus moves an assessment to a new review state
func (f *AssessmentFlowImpl) UpdateStatus(ctx context.Context, assessmentID uint, req *dto.UpdateAssessmentStatusRequest, metadata *ClientMetadata) (*dto.TaxAssessmentDTO, error) {
	if req == nil || !models.AssessmentStatus(req.Status).Valid() {
		return nil, NewBusinessError("ASSESSMENT_VALIDATION_FAILED", "Assessment validation failed", ErrInvalidAssessmentStatus)
	}

	assessment, err := f.assessmentRepo.ByID(ctx, assessmentID)
	if err != nil {
		return nil, NewBusinessError("ASSESSMENT_LOOKUP_FAILED", "Failed to lookup assessment", err)
	}
	if assessment == nil {
		return nil, NewBusinessError("ASSESSMENT_NOT_FOUND", "Assessment not found", ErrAssessmentNotFound)
	}

	newStatus := models.AssessmentStatus(req.Status)

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.assessmentRepo.UpdateStatus(txCtx, assessmentID, newStatus); err != nil {
			return err
		}
		return f.createAuditLog(txCtx, models.AuditActionAssessmentStatusChanged,
			utils.ToPtr(fmt.Sprintf("%d", assessmentID)),
			fmt.Sprintf("Assessment status changed from %s to %s", assessment.Status, newStatus),
			metadata)
	})
	if err != nil {
		return nil, NewBusinessError("ASSESSMENT_UPDATE_FAILED", "Failed to update assessment status", err)
	}

	assessment.Status = newStatus
	result := ToTaxAssessmentDTO(*assessment)
	return &result, nil
}

// Get retrieves a single assessment by ID
func (f *AssessmentFlowImpl) Get(ctx context.Context, assessmentID uint) (*dto.TaxAssessmentDTO, error) {
	assessment, err := f.assessmentRepo.ByID(ctx, assessmentID)
	if err != nil {
		return nil, NewBusinessError("ASSESSMENT_LOOKUP_FAILED", "Failed to lookup assessment", err)
	}
	if assessment == nil {
		return nil, NewBusinessError("ASSESSMENT_NOT_FOUND", "Assessment not found", ErrAssessmentNotFound)
	}

	result := ToTaxAssessmentDTO(*assessment)
	return &result, nil
}

// List retrieves a filtered, paginated page of assessments
func (f *AssessmentFlowImpl) List(ctx context.Context, req *dto.ListAssessmentsRequest) (*dto.ListAssessmentsResponse, error) {
	page, pageSize, err := normalizePagination(req.Page, req.PageSize)
	if err != nil {
		return nil, NewBusinessError("ASSESSMENT_LIST_VALIDATION_FAILED", "Invalid pagination", err)
	}

	filter := models.TaxAssessmentFilter{InfluencerID: req.InfluencerID}
	if req.Status != nil {
		filter.Status = utils.ToPtr(models.AssessmentStatus(*req.Status))
	}

	assessments, err := f.assessmentRepo.ByFilter(ctx, filter, "assessment_date DESC", pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, NewBusinessError("ASSESSMENT_LIST_FAILED", "Failed to list assessments", err)
	}

	total, err := f.assessmentRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("ASSESSMENT_COUNT_FAILED", "Failed to count assessments", err)
	}

	return &dto.ListAssessmentsResponse{
		Assessments: ToTaxAssessmentDTOs(assessments),
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

func (f *AssessmentFlowImpl) validateCreateRequest(req *dto.CreateAssessmentRequest) (time.Time, time.Time, error) {
	if req == nil || req.TaxableIncome <= 0 {
		return time.Time{}, time.Time{}, ErrTaxableIncomeRequired
	}
	if req.TaxRate < 0 || req.TaxRate > 1 {
		return time.Time{}, time.Time{}, ErrTaxRateOutOfRange
	}

	periodStart, err := time.Parse(time.RFC3339, req.AssessmentPeriodStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid assessment period start: %w", err)
	}
	periodEnd, err := time.Parse(time.RFC3339, req.AssessmentPeriodEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid assessment period end: %w", err)
	}
	if periodStart.After(periodEnd) {
		return time.Time{}, time.Time{}, ErrAssessmentPeriodInverted
	}

	return periodStart.UTC(), periodEnd.UTC(), nil
}

func (f *AssessmentFlowImpl) createAuditLog(ctx context.Context, action string, entityID *string, details string, metadata *ClientMetadata) error {
	return f.auditRepo.Save(ctx, buildAuditLog(action, models.AuditEntityAssessment, entityID, details, metadata))
}
