// Package businessflow contains the core business logic and use cases for registry workflows
package businessflow

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/app/services"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
	"github.com/kwabenaosei/Sankofa/utils"
)

// OfficerAuthFlow represents the officer authentication flow used by handlers
type OfficerAuthFlow interface {
	InitCaptcha(ctx context.Context) (*dto.OfficerCaptchaInitResponse, error)
	Login(ctx context.Context, req *dto.OfficerLoginRequest, metadata *ClientMetadata) (*dto.OfficerLoginResponse, error)
}

// OfficerAuthFlowImpl provides captcha-init and officer credential verification
type OfficerAuthFlowImpl struct {
	officerRepo  repository.OfficerRepository
	auditRepo    repository.AuditLogRepository
	tokenService services.TokenService
	captchaSvc   services.CaptchaService
}

func NewOfficerAuthFlow(
	officerRepo repository.OfficerRepository,
	auditRepo repository.AuditLogRepository,
	tokenService services.TokenService,
	captchaSvc services.CaptchaService,
) OfficerAuthFlow {
	return &OfficerAuthFlowImpl{
		officerRepo:  officerRepo,
		auditRepo:    auditRepo,
		tokenService: tokenService,
		captchaSvc:   captchaSvc,
	}
}

func (af *OfficerAuthFlowImpl) InitCaptcha(ctx context.Context) (*dto.OfficerCaptchaInitResponse, error) {
	if af.captchaSvc == nil {
		return nil, NewBusinessError("CAPTCHA_NOT_AVAILABLE", "Captcha service not available", ErrCacheNotAvailable)
	}
	ch, err := af.captchaSvc.GenerateRotate(ctx)
	if err != nil {
		return nil, NewBusinessError("CAPTCHA_INIT_FAILED", "Failed to initialize captcha", err)
	}
	return &dto.OfficerCaptchaInitResponse{
		ChallengeID:       ch.ID,
		MasterImageBase64: ch.MasterImageBase64,
		ThumbImageBase64:  ch.ThumbImageBase64,
	}, nil
}

func (af *OfficerAuthFlowImpl) Login(ctx context.Context, req *dto.OfficerLoginRequest, metadata *ClientMetadata) (*dto.OfficerLoginResponse, error) {
	// Validate request
	if req == nil {
		return nil, NewBusinessError("OFFICER_LOGIN_VALIDATION_FAILED", "Officer login validation failed", ErrOfficerNotFound)
	}
	if len(req.Username) == 0 || len(req.Password) == 0 {
		return nil, NewBusinessError("OFFICER_LOGIN_VALIDATION_FAILED", "Officer login validation failed", ErrIncorrectPassword)
	}
	if len(req.ChallengeID) == 0 {
		return nil, NewBusinessError("CAPTCHA_INVALID", "Captcha challenge missing", ErrInvalidCaptcha)
	}

	// Verify captcha first
	if af.captchaSvc == nil || !af.captchaSvc.VerifyRotate(ctx, req.ChallengeID, req.UserAngle) {
		return nil, NewBusinessError("CAPTCHA_INVALID", "Captcha validation failed", ErrInvalidCaptcha)
	}

	// Lookup officer
	officer, err := af.officerRepo.ByUsername(ctx, req.Username)
	if err != nil {
		return nil, NewBusinessError("OFFICER_LOOKUP_FAILED", "Failed to lookup officer", err)
	}
	if officer == nil {
		af.recordLoginAttempt(ctx, nil, req.Username, false, metadata)
		return nil, NewBusinessError("OFFICER_NOT_FOUND", "Officer not found", ErrOfficerNotFound)
	}
	if !utils.IsTrue(officer.IsActive) {
		af.recordLoginAttempt(ctx, officer, req.Username, false, metadata)
		return nil, NewBusinessError("OFFICER_INACTIVE", "Officer account is inactive", ErrOfficerInactive)
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(officer.PasswordHash), []byte(req.Password)); err != nil {
		af.recordLoginAttempt(ctx, officer, req.Username, false, metadata)
		return nil, NewBusinessError("OFFICER_INCORRECT_PASSWORD", "Incorrect password", ErrIncorrectPassword)
	}

	// Generate officer tokens
	accessToken, refreshToken, err := af.tokenService.GenerateOfficerTokens(officer.ID, officer.Username)
	if err != nil {
		return nil, NewBusinessError("TOKEN_GENERATION_FAILED", "Failed to generate tokens", err)
	}

	if err := af.officerRepo.UpdateLastLogin(ctx, officer.ID, utils.UTCNow()); err != nil {
		return nil, NewBusinessError("OFFICER_UPDATE_FAILED", "Failed to record login", err)
	}

	af.recordLoginAttempt(ctx, officer, req.Username, true, metadata)

	resp := &dto.OfficerLoginResponse{
		Officer: ToOfficerDTO(*officer),
		Session: ToOfficerSessionDTO(accessToken, refreshToken),
	}
	return resp, nil
}

// recordLoginAttempt appends an audit entry for the attempt. Audit failures
// never block authentication.
func (af *OfficerAuthFlowImpl) recordLoginAttempt(ctx context.Context, officer *models.Officer, username string, success bool, metadata *ClientMetadata) {
	action := models.AuditActionOfficerLoginFailed
	details := fmt.Sprintf("Failed login attempt for %s", username)
	if success {
		action = models.AuditActionOfficerLoginSuccess
		details = fmt.Sprintf("Officer %s logged in", username)
	}

	audit := buildAuditLog(action, models.AuditEntityOfficer, nil, details, metadata)
	audit.ActorName = &username
	if officer != nil {
		audit.OfficerID = &officer.ID
		audit.EntityID = utils.ToPtr(fmt.Sprintf("%d", officer.ID))
	}
	_ = af.auditRepo.Save(ctx, audit)
}
