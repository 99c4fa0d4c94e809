// Package businessflow contains the core business logic and use cases for registry workflows
package businessflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
	"github.com/kwabenaosei/Sankofa/utils"
)

// InfluencerFlow handles registration and maintenance of influencer records
type InfluencerFlow interface {
	Create(ctx context.Context, req *dto.CreateInfluencerRequest, metadata *ClientMetadata) (*dto.InfluencerDTO, error)
	Update(ctx context.Context, influencerID uint, req *dto.UpdateInfluencerRequest, metadata *ClientMetadata) (*dto.InfluencerDTO, error)
	Delete(ctx context.Context, influencerID uint, metadata *ClientMetadata) error
	Get(ctx context.Context, influencerID uint) (*dto.InfluencerDTO, error)
	List(ctx context.Context, req *dto.ListInfluencersRequest) (*dto.ListInfluencersResponse, error)
	Search(ctx context.Context, req *dto.SearchInfluencersRequest) (*dto.ListInfluencersResponse, error)
	Stats(ctx context.Context) (*dto.InfluencerStatsDTO, error)
}

// InfluencerFlowImpl implements the influencer registry business flow
type InfluencerFlowImpl struct {
	influencerRepo repository.InfluencerRepository
	assessmentRepo repository.TaxAssessmentRepository
	auditRepo      repository.AuditLogRepository
	db             *gorm.DB
}

// NewInfluencerFlow creates a new influencer flow instance
func NewInfluencerFlow(
	influencerRepo repository.InfluencerRepository,
	assessmentRepo repository.TaxAssessmentRepository,
	auditRepo repository.AuditLogRepository,
	db *gorm.DB,
) InfluencerFlow {
	return &InfluencerFlowImpl{
		influencerRepo: influencerRepo,
		assessmentRepo: assessmentRepo,
		auditRepo:      auditRepo,
		db:             db,
	}
}

// Create registers a new influencer. Compliance status defaults to pending,
// the data-refresh timestamp is stamped, and tax liability is derived from
// the estimated annual revenue at the flat rate.
func (f *InfluencerFlowImpl) Create(ctx context.Context, req *dto.CreateInfluencerRequest, metadata *ClientMetadata) (*dto.InfluencerDTO, error) {
	if err := f.validateCreateRequest(req); err != nil {
		return nil, NewBusinessError("INFLUENCER_VALIDATION_FAILED", "Influencer validation failed", err)
	}

	platform := models.Platform(req.Platform)

	existing, err := f.influencerRepo.ByPlatformAndHandle(ctx, platform, req.Handle)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_LOOKUP_FAILED", "Failed to check handle uniqueness", err)
	}
	if existing != nil {
		return nil, NewBusinessError("HANDLE_ALREADY_EXISTS", "Handle already registered on this platform", ErrHandleAlreadyExists)
	}

	status := models.ComplianceStatusPending
	if req.ComplianceStatus != nil {
		status = models.ComplianceStatus(*req.ComplianceStatus)
	}

	influencer := &models.Influencer{
		UUID:                    uuid.New(),
		Name:                    req.Name,
		Platform:                platform,
		Handle:                  req.Handle,
		ChannelID:               req.ChannelID,
		ProfileImageURL:         req.ProfileImageURL,
		Email:                   req.Email,
		Phone:                   req.Phone,
		Subscribers:             req.Subscribers,
		TotalViews:              req.TotalViews,
		AvgEngagementRate:       req.AvgEngagementRate,
		TotalVideos:             req.TotalVideos,
		EstimatedMonthlyRevenue: req.EstimatedMonthlyRevenue,
		EstimatedAnnualRevenue:  req.EstimatedAnnualRevenue,
		TaxLiability:            EstimateTaxLiability(req.EstimatedAnnualRevenue),
		TaxIDNumber:             req.TaxIDNumber,
		ComplianceScore:         req.ComplianceScore,
		ComplianceStatus:        &status,
		Region:                  req.Region,
		Notes:                   req.Notes,
		LastDataRefresh:         utils.UTCNowPtr(),
		CreatedAt:               utils.UTCNow(),
		UpdatedAt:               utils.UTCNow(),
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.influencerRepo.Save(txCtx, influencer); err != nil {
			return fmt.Errorf("failed to save influencer: %w", err)
		}
		return f.createAuditLog(txCtx, models.AuditActionInfluencerCreated, models.AuditEntityInfluencer,
			utils.ToPtr(fmt.Sprintf("%d", influencer.ID)),
			fmt.Sprintf("Registered %s influencer %s (%s)", influencer.Platform, influencer.Name, influencer.Handle),
			metadata)
	})
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_CREATE_FAILED", "Failed to register influencer", err)
	}

	result := ToInfluencerDTO(*influencer)
	return &result, nil
}

// Update applies a partial update. Absent fields are left unchanged; a
// request with no fields at all is rejected. Providing a new estimated
// annual revenue re-derives the tax liability.
func (f *InfluencerFlowImpl) Update(ctx context.Context, influencerID uint, req *dto.UpdateInfluencerRequest, metadata *ClientMetadata) (*dto.InfluencerDTO, error) {
	influencer, err := f.influencerRepo.ByID(ctx, influencerID)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_LOOKUP_FAILED", "Failed to lookup influencer", err)
	}
	if influencer == nil {
		return nil, NewBusinessError("INFLUENCER_NOT_FOUND", "Influencer not found", ErrInfluencerNotFound)
	}

	fields, err := f.buildUpdateFields(req)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_VALIDATION_FAILED", "Influencer validation failed", err)
	}
	if len(fields) == 0 {
		return nil, NewBusinessError("INFLUENCER_UPDATE_EMPTY", "No fields provided for update", ErrUpdateFieldsRequired)
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.influencerRepo.UpdateFields(txCtx, influencerID, fields); err != nil {
			return err
		}
		return f.createAuditLog(txCtx, models.AuditActionInfluencerUpdated, models.AuditEntityInfluencer,
			utils.ToPtr(fmt.Sprintf("%d", influencerID)),
			fmt.Sprintf("Updated influencer %s", influencer.Name),
			metadata)
	})
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_UPDATE_FAILED", "Failed to update influencer", err)
	}

	updated, err := f.influencerRepo.ByID(ctx, influencerID)
	if err != nil || updated == nil {
		return nil, NewBusinessError("INFLUENCER_LOOKUP_FAILED", "Failed to reload influencer", err)
	}

	result := ToInfluencerDTO(*updated)
	return &result, nil
}

// Delete removes an influencer along with its assessments. Deleting an
// unknown ID reports not-found rather than succeeding silently.
func (f *InfluencerFlowImpl) Delete(ctx context.Context, influencerID uint, metadata *ClientMetadata) error {
	influencer, err := f.influencerRepo.ByID(ctx, influencerID)
	if err != nil {
		return NewBusinessError("INFLUENCER_LOOKUP_FAILED", "Failed to lookup influencer", err)
	}
	if influencer == nil {
		return NewBusinessError("INFLUENCER_NOT_FOUND", "Influencer not found", ErrInfluencerNotFound)
	}

	err = repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.assessmentRepo.DeleteByInfluencerID(txCtx, influencerID); err != nil {
			return err
		}
		deleted, err := f.influencerRepo.Delete(txCtx, influencerID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrInfluencerNotFound
		}
		return f.createAuditLog(txCtx, models.AuditActionInfluencerDeleted, models.AuditEntityInfluencer,
			utils.ToPtr(fmt.Sprintf("%d", influencerID)),
			fmt.Sprintf("Deleted influencer %s (%s)", influencer.Name, influencer.Handle),
			metadata)
	})
	if err != nil {
		if IsInfluencerNotFound(err) {
			return NewBusinessError("INFLUENCER_NOT_FOUND", "Influencer not found", ErrInfluencerNotFound)
		}
		return NewBusinessError("INFLUENCER_DELETE_FAILED", "Failed to delete influencer", err)
	}

	return nil
}

// Get retrieves a single influencer by ID
func (f *InfluencerFlowImpl) Get(ctx context.Context, influencerID uint) (*dto.InfluencerDTO, error) {
	influencer, err := f.influencerRepo.ByID(ctx, influencerID)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_LOOKUP_FAILED", "Failed to lookup influencer", err)
	}
	if influencer == nil {
		return nil, NewBusinessError("INFLUENCER_NOT_FOUND", "Influencer not found", ErrInfluencerNotFound)
	}

	result := ToInfluencerDTO(*influencer)
	return &result, nil
}

// List retrieves a filtered, paginated page of influencers with the total count
func (f *InfluencerFlowImpl) List(ctx context.Context, req *dto.ListInfluencersRequest) (*dto.ListInfluencersResponse, error) {
	page, pageSize, err := normalizePagination(req.Page, req.PageSize)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_LIST_VALIDATION_FAILED", "Invalid pagination", err)
	}

	filter := models.InfluencerFilter{}
	if req.Platform != nil {
		filter.Platform = utils.ToPtr(models.Platform(*req.Platform))
	}
	if req.ComplianceStatus != nil {
		filter.ComplianceStatus = utils.ToPtr(models.ComplianceStatus(*req.ComplianceStatus))
	}
	if req.Region != nil {
		filter.Region = req.Region
	}

	influencers, err := f.influencerRepo.ByFilter(ctx, filter, "created_at DESC", pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_LIST_FAILED", "Failed to list influencers", err)
	}

	total, err := f.influencerRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_COUNT_FAILED", "Failed to count influencers", err)
	}

	return &dto.ListInfluencersResponse{
		Influencers: ToInfluencerDTOs(influencers),
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Search retrieves influencers whose name matches the term
func (f *InfluencerFlowImpl) Search(ctx context.Context, req *dto.SearchInfluencersRequest) (*dto.ListInfluencersResponse, error) {
	page, pageSize, err := normalizePagination(req.Page, req.PageSize)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_SEARCH_VALIDATION_FAILED", "Invalid pagination", err)
	}

	influencers, err := f.influencerRepo.SearchByName(ctx, req.Term, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_SEARCH_FAILED", "Failed to search influencers", err)
	}

	return &dto.ListInfluencersResponse{
		Influencers: ToInfluencerDTOs(influencers),
		Total:       int64(len(influencers)),
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Stats summarizes the whole registry for the influencers page header
func (f *InfluencerFlowImpl) Stats(ctx context.Context) (*dto.InfluencerStatsDTO, error) {
	influencers, err := f.influencerRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("INFLUENCER_STATS_FAILED", "Failed to load influencers", err)
	}

	stats := ComputeInfluencerStats(influencers)
	return &stats, nil
}

func (f *InfluencerFlowImpl) validateCreateRequest(req *dto.CreateInfluencerRequest) error {
	if req == nil || req.Name == "" {
		return ErrNameRequired
	}
	if req.Platform == "" {
		return ErrPlatformRequired
	}
	if !models.Platform(req.Platform).Valid() {
		return ErrInvalidPlatform
	}
	if req.Handle == "" {
		return ErrHandleRequired
	}
	if req.Region != nil && !models.IsKnownRegion(*req.Region) {
		return ErrUnknownRegion
	}
	return nil
}

// buildUpdateFields maps the non-nil request fields onto column updates,
// re-deriving tax liability whenever the annual revenue changes.
func (f *InfluencerFlowImpl) buildUpdateFields(req *dto.UpdateInfluencerRequest) (map[string]any, error) {
	fields := make(map[string]any)
	if req == nil {
		return fields, nil
	}

	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ChannelID != nil {
		fields["channel_id"] = *req.ChannelID
	}
	if req.ProfileImageURL != nil {
		fields["profile_image_url"] = *req.ProfileImageURL
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Subscribers != nil {
		fields["subscribers"] = *req.Subscribers
	}
	if req.TotalViews != nil {
		fields["total_views"] = *req.TotalViews
	}
	if req.AvgEngagementRate != nil {
		fields["avg_engagement_rate"] = *req.AvgEngagementRate
	}
	if req.TotalVideos != nil {
		fields["total_videos"] = *req.TotalVideos
	}
	if req.EstimatedMonthlyRevenue != nil {
		fields["estimated_monthly_revenue"] = *req.EstimatedMonthlyRevenue
	}
	if req.EstimatedAnnualRevenue != nil {
		fields["estimated_annual_revenue"] = *req.EstimatedAnnualRevenue
		fields["tax_liability"] = *EstimateTaxLiability(req.EstimatedAnnualRevenue)
	}
	if req.TaxIDNumber != nil {
		fields["tax_id_number"] = *req.TaxIDNumber
	}
	if req.ComplianceScore != nil {
		fields["compliance_score"] = *req.ComplianceScore
	}
	if req.ComplianceStatus != nil {
		status := models.ComplianceStatus(*req.ComplianceStatus)
		if !status.Valid() {
			return nil, ErrInvalidComplianceStatus
		}
		fields["compliance_status"] = status
	}
	if req.Region != nil {
		if !models.IsKnownRegion(*req.Region) {
			return nil, ErrUnknownRegion
		}
		fields["region"] = *req.Region
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	if len(fields) > 0 {
		fields["last_data_refresh"] = utils.UTCNow()
	}

	return fields, nil
}

func (f *InfluencerFlowImpl) createAuditLog(ctx context.Context, action, entityType string, entityID *string, details string, metadata *ClientMetadata) error {
	return f.auditRepo.Save(ctx, buildAuditLog(action, entityType, entityID, details, metadata))
}

// normalizePagination validates and defaults page and page size
func normalizePagination(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = 20
	}
	if page < 1 {
		return 0, 0, ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return 0, 0, ErrInvalidPageSize
	}
	return page, pageSize, nil
}
