// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/kwabenaosei/Sankofa/models"
	"gorm.io/gorm"
)

// AuditLogRepositoryImpl implements AuditLogRepository interface
type AuditLogRepositoryImpl struct {
	*BaseRepository[models.AuditLog, models.AuditLogFilter]
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &AuditLogRepositoryImpl{
		BaseRepository: NewBaseRepository[models.AuditLog, models.AuditLogFilter](db),
	}
}

// ListRecent retrieves the most recent audit entries
func (r *AuditLogRepositoryImpl) ListRecent(ctx context.Context, limit, offset int) ([]*models.AuditLog, error) {
	return r.ByFilter(ctx, models.AuditLogFilter{}, "created_at DESC", limit, offset)
}

// ListByEntity retrieves entries touching one entity type, optionally narrowed to a single record
func (r *AuditLogRepositoryImpl) ListByEntity(ctx context.Context, entityType string, entityID *string, limit, offset int) ([]*models.AuditLog, error) {
	filter := models.AuditLogFilter{EntityType: &entityType, EntityID: entityID}
	return r.ByFilter(ctx, filter, "created_at DESC", limit, offset)
}

// ListByOfficer retrieves entries recorded for one officer
func (r *AuditLogRepositoryImpl) ListByOfficer(ctx context.Context, officerID uint, limit, offset int) ([]*models.AuditLog, error) {
	filter := models.AuditLogFilter{OfficerID: &officerID}
	return r.ByFilter(ctx, filter, "created_at DESC", limit, offset)
}

// applyFilter applies filter criteria to a GORM query
func (r *AuditLogRepositoryImpl) applyFilter(query *gorm.DB, filter models.AuditLogFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.OfficerID != nil {
		query = query.Where("officer_id = ?", *filter.OfficerID)
	}
	if filter.Action != nil {
		query = query.Where("action = ?", *filter.Action)
	}
	if filter.EntityType != nil {
		query = query.Where("entity_type = ?", *filter.EntityType)
	}
	if filter.EntityID != nil {
		query = query.Where("entity_id = ?", *filter.EntityID)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	return query
}

// ByFilter retrieves audit entries based on filter criteria
func (r *AuditLogRepositoryImpl) ByFilter(ctx context.Context, filter models.AuditLogFilter, orderBy string, limit, offset int) ([]*models.AuditLog, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.AuditLog{})

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

	var logs []*models.AuditLog
	err := query.Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// Count returns the number of audit entries matching the filter
func (r *AuditLogRepositoryImpl) Count(ctx context.Context, filter models.AuditLogFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.AuditLog{})

	// Apply filters
	query = r.applyFilter(query, filter)

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
