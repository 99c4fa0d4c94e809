// Package businessflow contains the core business logic and use cases for registry workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Influencer-related errors
	ErrInfluencerNotFound      = errors.New("influencer not found")
	ErrNameRequired            = errors.New("name is required")
	ErrPlatformRequired        = errors.New("platform is required")
	ErrHandleRequired          = errors.New("handle is required")
	ErrInvalidPlatform         = errors.New("platform must be youtube or tiktok")
	ErrHandleAlreadyExists     = errors.New("handle already registered on this platform")
	ErrUnknownRegion           = errors.New("region is not a recognized Ghanaian region")
	ErrInvalidComplianceStatus = errors.New("invalid compliance status")
	ErrUpdateFieldsRequired    = errors.New("at least one field must be provided for update")

	// Assessment-related errors
	ErrAssessmentNotFound       = errors.New("assessment not found")
	ErrTaxableIncomeRequired    = errors.New("taxable income must be positive")
	ErrTaxRateOutOfRange        = errors.New("tax rate must be between 0 and 1")
	ErrInvalidAssessmentStatus  = errors.New("invalid assessment status")
	ErrAssessmentPeriodInverted = errors.New("assessment period start cannot be after end")

	// Officer and authentication errors
	ErrOfficerNotFound   = errors.New("officer not found")
	ErrOfficerInactive   = errors.New("officer account is inactive")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidCaptcha    = errors.New("invalid captcha answer")
	ErrCacheNotAvailable = errors.New("cache not available")

	// Channel lookup errors
	ErrChannelIDRequired          = errors.New("channel ID is required")
	ErrChannelProviderUnavailable = errors.New("channel data provider is not configured")
	ErrChannelLookupFailed        = errors.New("channel lookup failed")

	// Report errors
	ErrUnknownReportFormat = errors.New("unknown report format")

	// Filter errors
	ErrInvalidPage     = errors.New("page must be at least 1")
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsInfluencerNotFound(err error) bool {
	return errors.Is(err, ErrInfluencerNotFound)
}

func IsNameRequired(err error) bool {
	return errors.Is(err, ErrNameRequired)
}

func IsPlatformRequired(err error) bool {
	return errors.Is(err, ErrPlatformRequired)
}

func IsHandleRequired(err error) bool {
	return errors.Is(err, ErrHandleRequired)
}

func IsInvalidPlatform(err error) bool {
	return errors.Is(err, ErrInvalidPlatform)
}

func IsHandleAlreadyExists(err error) bool {
	return errors.Is(err, ErrHandleAlreadyExists)
}

func IsUnknownRegion(err error) bool {
	return errors.Is(err, ErrUnknownRegion)
}

func IsInvalidComplianceStatus(err error) bool {
	return errors.Is(err, ErrInvalidComplianceStatus)
}

func IsUpdateFieldsRequired(err error) bool {
	return errors.Is(err, ErrUpdateFieldsRequired)
}

func IsAssessmentNotFound(err error) bool {
	return errors.Is(err, ErrAssessmentNotFound)
}

func IsTaxableIncomeRequired(err error) bool {
	return errors.Is(err, ErrTaxableIncomeRequired)
}

func IsTaxRateOutOfRange(err error) bool {
	return errors.Is(err, ErrTaxRateOutOfRange)
}

func IsInvalidAssessmentStatus(err error) bool {
	return errors.Is(err, ErrInvalidAssessmentStatus)
}

func IsAssessmentPeriodInverted(err error) bool {
	return errors.Is(err, ErrAssessmentPeriodInverted)
}

func IsOfficerNotFound(err error) bool {
	return errors.Is(err, ErrOfficerNotFound)
}

func IsOfficerInactive(err error) bool {
	return errors.Is(err, ErrOfficerInactive)
}

func IsIncorrectPassword(err error) bool {
	return errors.Is(err, ErrIncorrectPassword)
}

func IsInvalidCaptcha(err error) bool {
	return errors.Is(err, ErrInvalidCaptcha)
}

func IsCacheNotAvailable(err error) bool {
	return errors.Is(err, ErrCacheNotAvailable)
}

func IsChannelIDRequired(err error) bool {
	return errors.Is(err, ErrChannelIDRequired)
}

func IsChannelProviderUnavailable(err error) bool {
	return errors.Is(err, ErrChannelProviderUnavailable)
}

func IsChannelLookupFailed(err error) bool {
	return errors.Is(err, ErrChannelLookupFailed)
}

func IsUnknownReportFormat(err error) bool {
	return errors.Is(err, ErrUnknownReportFormat)
}

func IsInvalidPage(err error) bool {
	return errors.Is(err, ErrInvalidPage)
}

func IsInvalidPageSize(err error) bool {
	return errors.Is(err, ErrInvalidPageSize)
}
