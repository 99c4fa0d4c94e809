// Package dto contains Data Transfer Objects for API request and response structures
package dto

// AuditLogDTO represents one audit trail entry in API responses
type AuditLogDTO struct {
	ID         uint    `json:"id" example:"311"`
	OfficerID  *uint   `json:"officer_id,omitempty" example:"3"`
	ActorName  string  `json:"actor_name" example:"ama.owusu"`
	Action     string  `json:"action" example:"influencer_created"`
	EntityType string  `json:"entity_type" example:"influencer"`
	EntityID   *string `json:"entity_id,omitempty" example:"42"`
	Details    *string `json:"details,omitempty"`
	RequestID  *string `json:"request_id,omitempty"`
	IPAddress  *string `json:"ip_address,omitempty" example:"10.0.0.7"`
	CreatedAt  string  `json:"created_at" example:"2025-06-01T09:00:00Z"`
}

// ListAuditLogsRequest holds query parameters for the audit trail listing
type ListAuditLogsRequest struct {
	EntityType *string `query:"entity_type" validate:"omitempty,oneof=influencer assessment report officer"`
	EntityID   *string `query:"entity_id" validate:"omitempty,max=64"`
	Page       int     `query:"page" validate:"omitempty,gte=1"`
	PageSize   int     `query:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// ListAuditLogsResponse wraps a page of audit entries
type ListAuditLogsResponse struct {
	Logs     []AuditLogDTO `json:"logs"`
	Total    int64         `json:"total" example:"412"`
	Page     int           `json:"page" example:"1"`
	PageSize int           `json:"page_size" example:"20"`
}
