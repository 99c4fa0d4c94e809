// Package models contains domain entities and business models for the influencer tax registry
package models

import (
	"time"

	"github.com/google/uuid"
)

// Officer is a revenue-authority user allowed to operate the dashboard.
type Officer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UUID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_officers_uuid;index:idx_officers_uuid" json:"uuid"`
	Username     string    `gorm:"size:255;not null;uniqueIndex:uk_officers_username;index:idx_officers_username" json:"username"`
	FullName     string    `gorm:"size:255;not null" json:"full_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`

	IsActive    *bool      `gorm:"default:true;index:idx_officers_is_active" json:"is_active"`
	CreatedAt   time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_officers_created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
	LastLoginAt *time.Time `gorm:"index:idx_officers_last_login_at" json:"last_login_at,omitempty"`
}

func (Officer) TableName() string {
	return "officers"
}

// OfficerFilter represents filter criteria for officer queries
type OfficerFilter struct {
	ID              *uint
	UUID            *uuid.UUID
	Username        *string
	IsActive        *bool
	CreatedAfter    *time.Time
	CreatedBefore   *time.Time
	LastLoginAfter  *time.Time
	LastLoginBefore *time.Time
}
