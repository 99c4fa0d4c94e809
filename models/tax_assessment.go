// Package models contains domain entities and business models for the influencer tax registry
package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AssessmentStatus represents the status of a tax assessment
type AssessmentStatus string

const (
	AssessmentStatusDraft    AssessmentStatus = "draft"
	AssessmentStatusPending  AssessmentStatus = "pending"
	AssessmentStatusApproved AssessmentStatus = "approved"
	AssessmentStatusDisputed AssessmentStatus = "disputed"
)

// String returns the string representation of the status
func (s AssessmentStatus) String() string {
	return string(s)
}

// Valid checks if the status is valid
func (s AssessmentStatus) Valid() bool {
	switch s {
	case AssessmentStatusDraft, AssessmentStatusPending,
		AssessmentStatusApproved, AssessmentStatusDisputed:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for AssessmentStatus
func (s *AssessmentStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*s = AssessmentStatus(v)
	case []byte:
		*s = AssessmentStatus(string(v))
	default:
		return fmt.Errorf("cannot scan %T into AssessmentStatus", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for AssessmentStatus
func (s AssessmentStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid AssessmentStatus: %s", s)
	}
	return string(s), nil
}

// TaxAssessment is an officer-recorded evaluation of an influencer's tax
// position for a period. Each assessment belongs to exactly one influencer.
type TaxAssessment struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_tax_assessments_uuid" json:"uuid"`

	InfluencerID uint        `gorm:"not null;index:idx_tax_assessments_influencer_id" json:"influencer_id"`
	Influencer   *Influencer `gorm:"foreignKey:InfluencerID;references:ID" json:"influencer,omitempty"`

	AssessmentDate        time.Time `gorm:"not null;index:idx_tax_assessments_date" json:"assessment_date"`
	AssessmentPeriodStart time.Time `gorm:"not null" json:"assessment_period_start"`
	AssessmentPeriodEnd   time.Time `gorm:"not null" json:"assessment_period_end"`

	TaxableIncome float64 `gorm:"not null" json:"taxable_income"`
	TaxRate       float64 `gorm:"not null" json:"tax_rate"`
	TaxAmount     float64 `gorm:"not null" json:"tax_amount"`

	Status     AssessmentStatus `gorm:"type:assessment_status_enum;not null;index:idx_tax_assessments_status" json:"status"`
	AssessedBy *string          `gorm:"size:255" json:"assessed_by,omitempty"`
	Notes      *string          `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (TaxAssessment) TableName() string {
	return "tax_assessments"
}

// TaxAssessmentFilter represents filter criteria for assessment queries
type TaxAssessmentFilter struct {
	ID             *uint
	UUID           *uuid.UUID
	InfluencerID   *uint
	Status         *AssessmentStatus
	AssessedAfter  *time.Time
	AssessedBefore *time.Time
}

// IsSettled reports whether the assessment has reached a terminal review state.
func (a *TaxAssessment) IsSettled() bool {
	return a.Status == AssessmentStatusApproved || a.Status == AssessmentStatusDisputed
}
