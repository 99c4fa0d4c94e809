// Package businessflow contains the core business logic and use cases for registry workflows
package businessflow

import (
	"context"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
	"github.com/kwabenaosei/Sankofa/utils"
)

// AuditLogFlow serves the audit trail pages
type AuditLogFlow interface {
	List(ctx context.Context, req *dto.ListAuditLogsRequest) (*dto.ListAuditLogsResponse, error)
}

// AuditLogFlowImpl implements the audit trail business flow
type AuditLogFlowImpl struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditLogFlow creates a new audit log flow instance
func NewAuditLogFlow(auditRepo repository.AuditLogRepository) AuditLogFlow {
	return &AuditLogFlowImpl{auditRepo: auditRepo}
}

// List retrieves the newest audit entries first, optionally narrowed to one
// entity type or record. An unspecified page size falls back to the default
// recency window.
func (f *AuditLogFlowImpl) List(ctx context.Context, req *dto.ListAuditLogsRequest) (*dto.ListAuditLogsResponse, error) {
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = utils.DefaultAuditLogLimit
	}
	page, pageSize, err := normalizePagination(req.Page, pageSize)
	if err != nil {
		return nil, NewBusinessError("AUDIT_LIST_VALIDATION_FAILED", "Invalid pagination", err)
	}

	offset := (page - 1) * pageSize

	var logs []*models.AuditLog
	filter := models.AuditLogFilter{}
	if req.EntityType != nil {
		filter.EntityType = req.EntityType
		filter.EntityID = req.EntityID
		logs, err = f.auditRepo.ListByEntity(ctx, *req.EntityType, req.EntityID, pageSize, offset)
	} else {
		logs, err = f.auditRepo.ListRecent(ctx, pageSize, offset)
	}
	if err != nil {
		return nil, NewBusinessError("AUDIT_LIST_FAILED", "Failed to list audit entries", err)
	}

	total, err := f.auditRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("AUDIT_COUNT_FAILED", "Failed to count audit entries", err)
	}

	return &dto.ListAuditLogsResponse{
		Logs:     ToAuditLogDTOs(logs),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
