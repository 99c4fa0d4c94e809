// Package businessflow contains the business logic for the application.
package businessflow

import (
	"fmt"
	"time"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/utils"
)

// ClientMetadata holds client-related information for audit logging
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// ToInfluencerDTO converts an influencer model to its API representation,
// applying the pending default for a missing compliance status and attaching
// the derived risk band.
func ToInfluencerDTO(inf models.Influencer) dto.InfluencerDTO {
	return dto.InfluencerDTO{
		ID:                      inf.ID,
		UUID:                    inf.UUID.String(),
		Name:                    inf.Name,
		Platform:                inf.Platform.String(),
		Handle:                  inf.Handle,
		ChannelID:               inf.ChannelID,
		ProfileImageURL:         inf.ProfileImageURL,
		Email:                   inf.Email,
		Phone:                   inf.Phone,
		Subscribers:             inf.Subscribers,
		TotalViews:              inf.TotalViews,
		AvgEngagementRate:       inf.AvgEngagementRate,
		TotalVideos:             inf.TotalVideos,
		EstimatedMonthlyRevenue: inf.EstimatedMonthlyRevenue,
		EstimatedAnnualRevenue:  inf.EstimatedAnnualRevenue,
		TaxLiability:            inf.TaxLiability,
		TaxIDNumber:             inf.TaxIDNumber,
		ComplianceScore:         inf.ComplianceScore,
		ComplianceStatus:        inf.EffectiveComplianceStatus().String(),
		RiskLevel:               string(ClassifyComplianceRisk(inf.ComplianceScore)),
		Region:                  inf.Region,
		Notes:                   inf.Notes,
		LastAssessedAt:          formatTimePtr(inf.LastAssessedAt),
		LastDataRefresh:         formatTimePtr(inf.LastDataRefresh),
		CreatedAt:               inf.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:               inf.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToInfluencerDTOs converts a slice of influencer models
func ToInfluencerDTOs(influencers []*models.Influencer) []dto.InfluencerDTO {
	dtos := make([]dto.InfluencerDTO, 0, len(influencers))
	for _, inf := range influencers {
		dtos = append(dtos, ToInfluencerDTO(*inf))
	}
	return dtos
}

// ToTaxAssessmentDTO converts an assessment model to its API representation
func ToTaxAssessmentDTO(a models.TaxAssessment) dto.TaxAssessmentDTO {
	d := dto.TaxAssessmentDTO{
		ID:                    a.ID,
		UUID:                  a.UUID.String(),
		InfluencerID:          a.InfluencerID,
		AssessmentDate:        a.AssessmentDate.UTC().Format(time.RFC3339),
		AssessmentPeriodStart: a.AssessmentPeriodStart.UTC().Format(time.RFC3339),
		AssessmentPeriodEnd:   a.AssessmentPeriodEnd.UTC().Format(time.RFC3339),
		TaxableIncome:         a.TaxableIncome,
		TaxRate:               a.TaxRate,
		TaxAmount:             a.TaxAmount,
		Status:                a.Status.String(),
		AssessedBy:            a.AssessedBy,
		Notes:                 a.Notes,
		CreatedAt:             a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.Influencer != nil {
		d.InfluencerName = a.Influencer.Name
	}
	return d
}

// ToTaxAssessmentDTOs converts a slice of assessment models
func ToTaxAssessmentDTOs(assessments []*models.TaxAssessment) []dto.TaxAssessmentDTO {
	dtos := make([]dto.TaxAssessmentDTO, 0, len(assessments))
	for _, a := range assessments {
		dtos = append(dtos, ToTaxAssessmentDTO(*a))
	}
	return dtos
}

// ToAuditLogDTO converts an audit log model to its API representation
func ToAuditLogDTO(l models.AuditLog) dto.AuditLogDTO {
	return dto.AuditLogDTO{
		ID:         l.ID,
		OfficerID:  l.OfficerID,
		ActorName:  utils.StringOr(l.ActorName, "system"),
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Details:    l.Details,
		RequestID:  l.RequestID,
		IPAddress:  l.IPAddress,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToAuditLogDTOs converts a slice of audit log models
func ToAuditLogDTOs(logs []*models.AuditLog) []dto.AuditLogDTO {
	dtos := make([]dto.AuditLogDTO, 0, len(logs))
	for _, l := range logs {
		dtos = append(dtos, ToAuditLogDTO(*l))
	}
	return dtos
}

// ToOfficerDTO converts an officer model for login responses
func ToOfficerDTO(o models.Officer) dto.OfficerDTO {
	return dto.OfficerDTO{
		ID:        o.ID,
		UUID:      o.UUID.String(),
		Username:  o.Username,
		FullName:  o.FullName,
		IsActive:  o.IsActive,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToOfficerSessionDTO builds the session payload for an issued token pair
func ToOfficerSessionDTO(accessToken, refreshToken string) dto.OfficerSessionDTO {
	return dto.OfficerSessionDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(utils.AccessTokenTTL.Seconds()),
		TokenType:    "Bearer",
		CreatedAt:    utils.UTCNowRFC3339(),
	}
}

// buildAuditLog assembles an audit entry from the action and client metadata.
// The officer identity travels in the metadata's additional fields, set by
// the authentication middleware.
func buildAuditLog(action, entityType string, entityID *string, details string, metadata *ClientMetadata) *models.AuditLog {
	audit := &models.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    &details,
		CreatedAt:  utils.UTCNow(),
	}
	if metadata == nil {
		return audit
	}
	if metadata.IPAddress != "" {
		audit.IPAddress = &metadata.IPAddress
	}
	if metadata.RequestID != "" {
		audit.RequestID = &metadata.RequestID
	}
	if actor := metadata.Additional["actor_name"]; actor != "" {
		audit.ActorName = &actor
	}
	if officerID := metadata.Additional["officer_id"]; officerID != "" {
		var id uint
		if _, err := fmt.Sscanf(officerID, "%d", &id); err == nil {
			audit.OfficerID = &id
		}
	}
	return audit
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return utils.ToPtr(t.UTC().Format(time.RFC3339))
}
