// Package dto
package dto

// OfficerDTO represents a revenue officer in API responses
type OfficerDTO struct {
	ID        uint   `json:"id" example:"3"`
	UUID      string `json:"uuid" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Username  string `json:"username" example:"ama.owusu"`
	FullName  string `json:"full_name" example:"Ama Owusu"`
	IsActive  *bool  `json:"is_active" example:"true"`
	CreatedAt string `json:"created_at" example:"2025-01-15T10:30:00Z"`
}

// OfficerSessionDTO carries the issued token pair
type OfficerSessionDTO struct {
	AccessToken  string `json:"access_token" example:"jwt"`
	RefreshToken string `json:"refresh_token" example:"jwt"`
	ExpiresIn    int    `json:"expires_in" example:"3600"`
	TokenType    string `json:"token_type" example:"Bearer"`
	CreatedAt    string `json:"created_at" example:"2025-01-15T10:30:00Z"`
}

// OfficerCaptchaInitResponse returns a fresh rotate-captcha challenge
type OfficerCaptchaInitResponse struct {
	ChallengeID       string `json:"challenge_id"`
	MasterImageBase64 string `json:"master_image_base64"`
	ThumbImageBase64  string `json:"thumb_image_base64"`
}

// OfficerLoginRequest carries credentials plus the captcha solution
type OfficerLoginRequest struct {
	ChallengeID string  `json:"challenge_id" validate:"required"`
	Username    string  `json:"username" validate:"required,min=3,max=255"`
	Password    string  `json:"password" validate:"required,min=8,max=100"`
	UserAngle   float64 `json:"user_angle" validate:"required"`
}

// OfficerLoginResponse is returned on successful authentication
type OfficerLoginResponse struct {
	Officer OfficerDTO        `json:"officer"`
	Session OfficerSessionDTO `json:"session"`
}
