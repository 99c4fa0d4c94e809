// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"fmt"

	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/utils"
	"gorm.io/gorm"
)

// TaxAssessmentRepositoryImpl implements TaxAssessmentRepository interface
type TaxAssessmentRepositoryImpl struct {
	*BaseRepository[models.TaxAssessment, models.TaxAssessmentFilter]
}

// NewTaxAssessmentRepository creates a new tax assessment repository
func NewTaxAssessmentRepository(db *gorm.DB) TaxAssessmentRepository {
	return &TaxAssessmentRepositoryImpl{
		BaseRepository: NewBaseRepository[models.TaxAssessment, models.TaxAssessmentFilter](db),
	}
}

// ByInfluencerID retrieves assessments for one influencer, newest assessment first
func (r *TaxAssessmentRepositoryImpl) ByInfluencerID(ctx context.Context, influencerID uint, limit, offset int) ([]*models.TaxAssessment, error) {
	filter := models.TaxAssessmentFilter{InfluencerID: &influencerID}
	return r.ByFilter(ctx, filter, "assessment_date DESC", limit, offset)
}

// ByStatus retrieves assessments in a given review state
func (r *TaxAssessmentRepositoryImpl) ByStatus(ctx context.Context, status models.AssessmentStatus, limit, offset int) ([]*models.TaxAssessment, error) {
	filter := models.TaxAssessmentFilter{Status: &status}
	return r.ByFilter(ctx, filter, "assessment_date DESC", limit, offset)
}

// ListAll retrieves every assessment, newest first
func (r *TaxAssessmentRepositoryImpl) ListAll(ctx context.Context) ([]*models.TaxAssessment, error) {
	return r.ByFilter(ctx, models.TaxAssessmentFilter{}, "assessment_date DESC", 0, 0)
}

// UpdateStatus moves an assessment to a new review state
func (r *TaxAssessmentRepositoryImpl) UpdateStatus(ctx context.Context, assessmentID uint, status models.AssessmentStatus) error {
	db := r.getDB(ctx)

	err := db.Model(&models.TaxAssessment{}).
		Where("id = ?", assessmentID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": utils.UTCNow(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update assessment %d status: %w", assessmentID, err)
	}

	return nil
}

// DeleteByInfluencerID removes all assessments belonging to an influencer
func (r *TaxAssessmentRepositoryImpl) DeleteByInfluencerID(ctx context.Context, influencerID uint) error {
	db := r.getDB(ctx)

	err := db.Where("influencer_id = ?", influencerID).Delete(&models.TaxAssessment{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete assessments for influencer %d: %w", influencerID, err)
	}

	return nil
}

// applyFilter applies filter criteria to a GORM query
func (r *TaxAssessmentRepositoryImpl) applyFilter(query *gorm.DB, filter models.TaxAssessmentFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.InfluencerID != nil {
		query = query.Where("influencer_id = ?", *filter.InfluencerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AssessedAfter != nil {
		query = query.Where("assessment_date > ?", *filter.AssessedAfter)
	}
	if filter.AssessedBefore != nil {
		query = query.Where("assessment_date < ?", *filter.AssessedBefore)
	}
	return query
}

// ByFilter retrieves assessments based on filter criteria
func (r *TaxAssessmentRepositoryImpl) ByFilter(ctx context.Context, filter models.TaxAssessmentFilter, orderBy string, limit, offset int) ([]*models.TaxAssessment, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.TaxAssessment{})

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

	var assessments []*models.TaxAssessment
	err := query.Find(&assessments).Error
	if err != nil {
		return nil, err
	}

	return assessments, nil
}

// Count returns the number of assessments matching the filter
func (r *TaxAssessmentRepositoryImpl) Count(ctx context.Context, filter models.TaxAssessmentFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.TaxAssessment{})

	// Apply filters
	query = r.applyFilter(query, filter)

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
