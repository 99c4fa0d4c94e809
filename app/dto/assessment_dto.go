// Package dto contains Data Transfer Objects for API request and response structures
package dto

// TaxAssessmentDTO represents a tax assessment in API responses
type TaxAssessmentDTO struct {
	ID                    uint    `json:"id" example:"7"`
	UUID                  string  `json:"uuid" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	InfluencerID          uint    `json:"influencer_id" example:"42"`
	InfluencerName        string  `json:"influencer_name,omitempty" example:"Kwame Mensah"`
	AssessmentDate        string  `json:"assessment_date" example:"2025-06-01T09:00:00Z"`
	AssessmentPeriodStart string  `json:"assessment_period_start" example:"2024-01-01T00:00:00Z"`
	AssessmentPeriodEnd   string  `json:"assessment_period_end" example:"2024-12-31T23:59:59Z"`
	TaxableIncome         float64 `json:"taxable_income" example:"120000"`
	TaxRate               float64 `json:"tax_rate" example:"0.25"`
	TaxAmount             float64 `json:"tax_amount" example:"30000"`
	Status                string  `json:"status" example:"pending"`
	AssessedBy            *string `json:"assessed_by,omitempty" example:"ama.owusu"`
	Notes                 *string `json:"notes,omitempty"`
	CreatedAt             string  `json:"created_at" example:"2025-06-01T09:00:00Z"`
}

// CreateAssessmentRequest represents the payload to record a new assessment
type CreateAssessmentRequest struct {
	InfluencerID          uint    `json:"influencer_id" validate:"required,gt=0" example:"42"`
	AssessmentPeriodStart string  `json:"assessment_period_start" validate:"required" example:"2024-01-01T00:00:00Z"`
	AssessmentPeriodEnd   string  `json:"assessment_period_end" validate:"required" example:"2024-12-31T23:59:59Z"`
	TaxableIncome         float64 `json:"taxable_income" validate:"required,gt=0" example:"120000"`
	TaxRate               float64 `json:"tax_rate" validate:"omitempty,gt=0,lte=1" example:"0.25"`
	Notes                 *string `json:"notes,omitempty" validate:"omitempty,max=4096"`
}

// UpdateAssessmentStatusRequest moves an assessment through its review lifecycle
type UpdateAssessmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft pending approved disputed" example:"approved"`
}

// ListAssessmentsRequest holds query parameters for listing assessments
type ListAssessmentsRequest struct {
	InfluencerID *uint   `query:"influencer_id" validate:"omitempty,gt=0"`
	Status       *string `query:"status" validate:"omitempty,oneof=draft pending approved disputed"`
	Page         int     `query:"page" validate:"omitempty,gte=1"`
	PageSize     int     `query:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// ListAssessmentsResponse wraps a page of assessments
type ListAssessmentsResponse struct {
	Assessments []TaxAssessmentDTO `json:"assessments"`
	Total       int64              `json:"total" example:"31"`
	Page        int                `json:"page" example:"1"`
	PageSize    int                `json:"page_size" example:"20"`
}
