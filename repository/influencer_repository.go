// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"fmt"

	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/utils"
	"gorm.io/gorm"
)

// InfluencerRepositoryImpl implements InfluencerRepository interface
type InfluencerRepositoryImpl struct {
	*BaseRepository[models.Influencer, models.InfluencerFilter]
}

// NewInfluencerRepository creates a new influencer repository
func NewInfluencerRepository(db *gorm.DB) InfluencerRepository {
	return &InfluencerRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Influencer, models.InfluencerFilter](db),
	}
}

// ByUUID retrieves an influencer by UUID
func (r *InfluencerRepositoryImpl) ByUUID(ctx context.Context, uuid string) (*models.Influencer, error) {
	parsedUUID, err := utils.ParseUUID(uuid)
	if err != nil {
		return nil, err
	}

	filter := models.InfluencerFilter{UUID: &parsedUUID}
	influencers, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, err
	}

	if len(influencers) == 0 {
		return nil, nil
	}

	return influencers[0], nil
}

// ByPlatformAndHandle retrieves an influencer by the platform-scoped handle
func (r *InfluencerRepositoryImpl) ByPlatformAndHandle(ctx context.Context, platform models.Platform, handle string) (*models.Influencer, error) {
	filter := models.InfluencerFilter{Platform: &platform, Handle: &handle}
	influencers, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, err
	}

	if len(influencers) == 0 {
		return nil, nil
	}

	return influencers[0], nil
}

// SearchByName retrieves influencers whose name contains the term, case-insensitively
func (r *InfluencerRepositoryImpl) SearchByName(ctx context.Context, term string, limit, offset int) ([]*models.Influencer, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Influencer{}).
		Where("name ILIKE ?", "%"+term+"%").
		Order("name ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var influencers []*models.Influencer
	err := query.Find(&influencers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search influencers by name: %w", err)
	}

	return influencers, nil
}

// ListAll retrieves every registered influencer, newest first
func (r *InfluencerRepositoryImpl) ListAll(ctx context.Context) ([]*models.Influencer, error) {
	return r.ByFilter(ctx, models.InfluencerFilter{}, "created_at DESC", 0, 0)
}

// UpdateFields applies a partial update to an influencer row
func (r *InfluencerRepositoryImpl) UpdateFields(ctx context.Context, influencerID uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	db := r.getDB(ctx)
	fields["updated_at"] = utils.UTCNow()

	err := db.Model(&models.Influencer{}).Where("id = ?", influencerID).Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update influencer %d: %w", influencerID, err)
	}

	return nil
}

// Delete removes an influencer row and reports whether a row existed
func (r *InfluencerRepositoryImpl) Delete(ctx context.Context, influencerID uint) (bool, error) {
	db := r.getDB(ctx)

	result := db.Where("id = ?", influencerID).Delete(&models.Influencer{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete influencer %d: %w", influencerID, result.Error)
	}

	return result.RowsAffected > 0, nil
}

// applyFilter applies filter criteria to a GORM query
func (r *InfluencerRepositoryImpl) applyFilter(query *gorm.DB, filter models.InfluencerFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.Platform != nil {
		query = query.Where("platform = ?", *filter.Platform)
	}
	if filter.Handle != nil {
		query = query.Where("handle = ?", *filter.Handle)
	}
	if filter.ComplianceStatus != nil {
		query = query.Where("compliance_status = ?", *filter.ComplianceStatus)
	}
	if filter.Region != nil {
		query = query.Where("region = ?", *filter.Region)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves influencers based on filter criteria
func (r *InfluencerRepositoryImpl) ByFilter(ctx context.Context, filter models.InfluencerFilter, orderBy string, limit, offset int) ([]*models.Influencer, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Influencer{})

	// Apply filters
	query = r.applyFilter(query, filter)

	// Apply ordering (default to id DESC)
	if orderBy == "" {
		orderBy = "id DESC"
	}
	query = query.Order(orderBy)

	// Apply pagination
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var influencers []*models.Influencer
	err := query.Find(&influencers).Error
	if err != nil {
		return nil, err
	}

	return influencers, nil
}

// Count returns the number of influencers matching the filter
func (r *InfluencerRepositoryImpl) Count(ctx context.Context, filter models.InfluencerFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Influencer{})

	// Apply filters
	query = r.applyFilter(query, filter)

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
