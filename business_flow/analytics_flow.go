// Package businessflow contains the core business logic and use cases for registry workflows
package businessflow

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/config"
	"github.com/kwabenaosei/Sankofa/repository"
	"github.com/kwabenaosei/Sankofa/utils"
)

// AnalyticsFlow serves the dashboard aggregates computed from registry snapshots
type AnalyticsFlow interface {
	Overview(ctx context.Context) (*dto.AnalyticsOverviewResponse, error)
	DashboardMetrics(ctx context.Context) (*dto.DashboardMetricsDTO, error)
	PlatformDistribution(ctx context.Context) ([]dto.PlatformSliceDTO, error)
	RegionalDistribution(ctx context.Context) ([]dto.RegionCountDTO, error)
	ComplianceBreakdown(ctx context.Context) ([]dto.ComplianceSliceDTO, error)
	TopInfluencers(ctx context.Context) ([]dto.InfluencerDTO, error)
	MonthlyRevenue(ctx context.Context) ([]dto.MonthlyRevenuePointDTO, error)
}

// AnalyticsFlowImpl computes aggregates from full-table snapshots. The
// assembled overview is cached in redis for a short window; cache failures
// degrade to recomputation, never to an error.
type AnalyticsFlowImpl struct {
	influencerRepo repository.InfluencerRepository
	assessmentRepo repository.TaxAssessmentRepository
	rc             *redis.Client
	cacheConfig    *config.CacheConfig
}

// NewAnalyticsFlow creates a new analytics flow instance
func NewAnalyticsFlow(
	influencerRepo repository.InfluencerRepository,
	assessmentRepo repository.TaxAssessmentRepository,
	rc *redis.Client,
	cacheConfig *config.CacheConfig,
) AnalyticsFlow {
	return &AnalyticsFlowImpl{
		influencerRepo: influencerRepo,
		assessmentRepo: assessmentRepo,
		rc:             rc,
		cacheConfig:    cacheConfig,
	}
}

func redisKey(cfg config.CacheConfig, key string) string {
	return cfg.RedisPrefix + key
}

// Overview assembles every dashboard aggregate from one registry snapshot
func (f *AnalyticsFlowImpl) Overview(ctx context.Context) (*dto.AnalyticsOverviewResponse, error) {
	if cached := f.readCachedOverview(ctx); cached != nil {
		return cached, nil
	}

	influencers, err := f.influencerRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("ANALYTICS_SNAPSHOT_FAILED", "Failed to load influencer snapshot", err)
	}
	assessments, err := f.assessmentRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("ANALYTICS_SNAPSHOT_FAILED", "Failed to load assessment snapshot", err)
	}

	overview := &dto.AnalyticsOverviewResponse{
		Metrics:              ComputeDashboardMetrics(influencers, assessments),
		PlatformDistribution: ComputePlatformDistribution(influencers),
		RegionalDistribution: ComputeRegionalDistribution(influencers),
		ComplianceBreakdown:  ComputeComplianceBreakdown(influencers),
		TopInfluencers:       ToInfluencerDTOs(ComputeTopInfluencers(influencers)),
		MonthlyRevenue:       ComputeMonthlyRevenueSeries(influencers),
	}

	f.writeCachedOverview(ctx, overview)
	return overview, nil
}

// DashboardMetrics returns the headline summary
func (f *AnalyticsFlowImpl) DashboardMetrics(ctx context.Context) (*dto.DashboardMetricsDTO, error) {
	overview, err := f.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return &overview.Metrics, nil
}

// PlatformDistribution returns the fixed two-bucket platform counts
func (f *AnalyticsFlowImpl) PlatformDistribution(ctx context.Context) ([]dto.PlatformSliceDTO, error) {
	overview, err := f.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return overview.PlatformDistribution, nil
}

// RegionalDistribution returns per-region counts sorted descending
func (f *AnalyticsFlowImpl) RegionalDistribution(ctx context.Context) ([]dto.RegionCountDTO, error) {
	overview, err := f.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return overview.RegionalDistribution, nil
}

// ComplianceBreakdown returns the zero-filled per-status counts
func (f *AnalyticsFlowImpl) ComplianceBreakdown(ctx context.Context) ([]dto.ComplianceSliceDTO, error) {
	overview, err := f.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return overview.ComplianceBreakdown, nil
}

// TopInfluencers returns the revenue ranking truncated to the top ten
func (f *AnalyticsFlowImpl) TopInfluencers(ctx context.Context) ([]dto.InfluencerDTO, error) {
	overview, err := f.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return overview.TopInfluencers, nil
}

// MonthlyRevenue returns the always-empty historical series
func (f *AnalyticsFlowImpl) MonthlyRevenue(ctx context.Context) ([]dto.MonthlyRevenuePointDTO, error) {
	overview, err := f.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return overview.MonthlyRevenue, nil
}

func (f *AnalyticsFlowImpl) readCachedOverview(ctx context.Context) *dto.AnalyticsOverviewResponse {
	if f.rc == nil || f.cacheConfig == nil || !f.cacheConfig.Enabled {
		return nil
	}
	key := redisKey(*f.cacheConfig, utils.AnalyticsOverviewCacheKey)
	bs, err := f.rc.Get(ctx, key).Bytes()
	if err != nil || len(bs) == 0 {
		return nil
	}
	var overview dto.AnalyticsOverviewResponse
	if err := json.Unmarshal(bs, &overview); err != nil {
		return nil
	}
	return &overview
}

func (f *AnalyticsFlowImpl) writeCachedOverview(ctx context.Context, overview *dto.AnalyticsOverviewResponse) {
	if f.rc == nil || f.cacheConfig == nil || !f.cacheConfig.Enabled {
		return
	}
	key := redisKey(*f.cacheConfig, utils.AnalyticsOverviewCacheKey)
	if bs, err := json.Marshal(overview); err == nil {
		_ = f.rc.Set(ctx, key, bs, f.cacheConfig.AnalyticsTTL).Err()
	}
}
