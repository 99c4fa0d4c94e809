// Package businessflow contains the core business logic and use cases for registry workflows
package businessflow

import (
	"context"
	"fmt"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/app/services"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
)

// ChannelFlow proxies channel statistic lookups to the configured provider
type ChannelFlow interface {
	Lookup(ctx context.Context, req *dto.ChannelLookupRequest, metadata *ClientMetadata) (*dto.ChannelInfoDTO, error)
}

// ChannelFlowImpl implements the channel lookup business flow
type ChannelFlowImpl struct {
	lookupSvc services.ChannelLookupService
	auditRepo repository.AuditLogRepository
}

// NewChannelFlow creates a new channel lookup flow instance
func NewChannelFlow(lookupSvc services.ChannelLookupService, auditRepo repository.AuditLogRepository) ChannelFlow {
	return &ChannelFlowImpl{
		lookupSvc: lookupSvc,
		auditRepo: auditRepo,
	}
}

// Lookup fetches live channel statistics. An unconfigured provider is a
// client-visible condition, not a server fault.
func (f *ChannelFlowImpl) Lookup(ctx context.Context, req *dto.ChannelLookupRequest, metadata *ClientMetadata) (*dto.ChannelInfoDTO, error) {
	if req == nil || req.ChannelID == "" {
		return nil, NewBusinessError("CHANNEL_VALIDATION_FAILED", "Channel lookup validation failed", ErrChannelIDRequired)
	}
	if !models.Platform(req.Platform).Valid() {
		return nil, NewBusinessError("CHANNEL_VALIDATION_FAILED", "Channel lookup validation failed", ErrInvalidPlatform)
	}
	if f.lookupSvc == nil || !f.lookupSvc.Configured() {
		return nil, NewBusinessError("CHANNEL_PROVIDER_UNAVAILABLE", "Channel data provider is not configured", ErrChannelProviderUnavailable)
	}

	info, err := f.lookupSvc.Lookup(ctx, models.Platform(req.Platform), req.ChannelID)
	if err != nil {
		return nil, NewBusinessError("CHANNEL_LOOKUP_FAILED", "Channel lookup failed",
			fmt.Errorf("%w: %v", ErrChannelLookupFailed, err))
	}

	_ = f.auditRepo.Save(ctx, buildAuditLog(models.AuditActionChannelLookup, models.AuditEntityInfluencer,
		nil, fmt.Sprintf("Looked up %s channel %s", req.Platform, req.ChannelID), metadata))

	return info, nil
}
