// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/utils"
	"gorm.io/gorm"
)

// OfficerRepositoryImpl implements OfficerRepository interface
type OfficerRepositoryImpl struct {
	*BaseRepository[models.Officer, models.OfficerFilter]
}

// NewOfficerRepository creates a new officer repository
func NewOfficerRepository(db *gorm.DB) OfficerRepository {
	return &OfficerRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Officer, models.OfficerFilter](db),
	}
}

// ByUsername retrieves an officer by username
func (r *OfficerRepositoryImpl) ByUsername(ctx context.Context, username string) (*models.Officer, error) {
	filter := models.OfficerFilter{Username: &username}
	officers, err := r.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, err
	}

	if len(officers) == 0 {
		return nil, nil
	}

	return officers[0], nil
}

// UpdateLastLogin stamps the officer's most recent successful login
func (r *OfficerRepositoryImpl) UpdateLastLogin(ctx context.Context, officerID uint, at time.Time) error {
	db := r.getDB(ctx)

	err := db.Model(&models.Officer{}).
		Where("id = ?", officerID).
		Updates(map[string]any{
			"last_login_at": at,
			"updated_at":    utils.UTCNow(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update officer %d last login: %w", officerID, err)
	}

	return nil
}

// applyFilter applies filter criteria to a GORM query
func (r *OfficerRepositoryImpl) applyFilter(query *gorm.DB, filter models.OfficerFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.Username != nil {
		query = query.Where("username = ?", *filter.Username)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at < ?", *filter.CreatedBefore)
	}
	if filter.LastLoginAfter != nil {
		query = query.Where("last_login_at > ?", *filter.LastLoginAfter)
	}
	if filter.LastLoginBefore != nil {
		query = query.Where("last_login_at < ?", *filter.LastLoginBefore)
	}
	return query
}

// ByFilter retrieves officers based on filter criteria
func (r *OfficerRepositoryImpl) ByFilter(ctx context.Context, filter models.OfficerFilter, orderBy string, limit, offset int) ([]*models.Officer, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Officer{})

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

	var officers []*models.Officer
	err := query.Find(&officers).Error
	if err != nil {
		return nil, err
	}

	return officers, nil
}

// Count returns the number of officers matching the filter
func (r *OfficerRepositoryImpl) Count(ctx context.Context, filter models.OfficerFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Officer{})

	// Apply filters
	query = r.applyFilter(query, filter)

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
