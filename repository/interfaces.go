// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/kwabenaosei/Sankofa/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
}

// InfluencerRepository defines operations for registered influencers
type InfluencerRepository interface {
	Repository[models.Influencer, models.InfluencerFilter]
	ByUUID(ctx context.Context, uuid string) (*models.Influencer, error)
	ByPlatformAndHandle(ctx context.Context, platform models.Platform, handle string) (*models.Influencer, error)
	SearchByName(ctx context.Context, term string, limit, offset int) ([]*models.Influencer, error)
	ListAll(ctx context.Context) ([]*models.Influencer, error)
	UpdateFields(ctx context.Context, influencerID uint, fields map[string]any) error
	Delete(ctx context.Context, influencerID uint) (bool, error)
}

// TaxAssessmentRepository defines operations for tax assessments
type TaxAssessmentRepository interface {
	Repository[models.TaxAssessment, models.TaxAssessmentFilter]
	ByInfluencerID(ctx context.Context, influencerID uint, limit, offset int) ([]*models.TaxAssessment, error)
	ByStatus(ctx context.Context, status models.AssessmentStatus, limit, offset int) ([]*models.TaxAssessment, error)
	ListAll(ctx context.Context) ([]*models.TaxAssessment, error)
	UpdateStatus(ctx context.Context, assessmentID uint, status models.AssessmentStatus) error
	DeleteByInfluencerID(ctx context.Context, influencerID uint) error
}

// AuditLogRepository defines operations for audit logs
type AuditLogRepository interface {
	Repository[models.AuditLog, models.AuditLogFilter]
	ListRecent(ctx context.Context, limit, offset int) ([]*models.AuditLog, error)
	ListByEntity(ctx context.Context, entityType string, entityID *string, limit, offset int) ([]*models.AuditLog, error)
	ListByOfficer(ctx context.Context, officerID uint, limit, offset int) ([]*models.AuditLog, error)
}

// OfficerRepository defines operations for dashboard officers
type OfficerRepository interface {
	Repository[models.Officer, models.OfficerFilter]
	ByUsername(ctx context.Context, username string) (*models.Officer, error)
	UpdateLastLogin(ctx context.Context, officerID uint, at time.Time) error
}
