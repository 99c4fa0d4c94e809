// Package models contains domain entities and business models for the influencer tax registry
package models

import (
	"time"
)

// AuditLog is an immutable, append-only record of a system action. The
// timestamp is assigned at creation and never rewritten.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OfficerID  *uint     `gorm:"index:idx_audit_officer_id" json:"officer_id,omitempty"`
	Officer    *Officer  `gorm:"foreignKey:OfficerID;references:ID" json:"officer,omitempty"`
	ActorName  *string   `gorm:"size:255" json:"actor_name,omitempty"`
	Action     string    `gorm:"type:audit_action_enum;not null;index:idx_audit_action" json:"action"`
	EntityType string    `gorm:"size:60;not null;index:idx_audit_entity_type" json:"entity_type"`
	EntityID   *string   `gorm:"size:255;index:idx_audit_entity_id" json:"entity_id,omitempty"`
	Details    *string   `gorm:"type:text" json:"details,omitempty"`
	RequestID  *string   `gorm:"size:255;index:idx_audit_request_id" json:"request_id,omitempty"`
	IPAddress  *string   `gorm:"type:inet" json:"ip_address,omitempty"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP;index:idx_audit_created_at" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}

// Audit action constants
const (
	AuditActionInfluencerCreated       = "influencer_created"
	AuditActionInfluencerUpdated       = "influencer_updated"
	AuditActionInfluencerDeleted       = "influencer_deleted"
	AuditActionAssessmentCreated       = "assessment_created"
	AuditActionAssessmentStatusChanged = "assessment_status_changed"
	AuditActionReportGenerated         = "report_generated"
	AuditActionChannelLookup           = "channel_lookup"
	AuditActionOfficerLoginSuccess     = "officer_login_success"
	AuditActionOfficerLoginFailed      = "officer_login_failed"
)

// Audit entity types
const (
	AuditEntityInfluencer = "influencer"
	AuditEntityAssessment = "assessment"
	AuditEntityReport     = "report"
	AuditEntityOfficer    = "officer"
)

// AuditLogFilter represents filter criteria for audit log queries
type AuditLogFilter struct {
	ID            *uint
	OfficerID     *uint
	Action        *string
	EntityType    *string
	EntityID      *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// IsMutation reports whether the entry records a write to registry data, as
// opposed to a login or report download.
func (a *AuditLog) IsMutation() bool {
	mutations := map[string]bool{
		AuditActionInfluencerCreated:       true,
		AuditActionInfluencerUpdated:       true,
		AuditActionInfluencerDeleted:       true,
		AuditActionAssessmentCreated:       true,
		AuditActionAssessmentStatusChanged: true,
	}
	return mutations[a.Action]
}
