// Package testing provides test utilities and database setup for testing the influencer tax registry
package testing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestOfficer creates an active revenue officer with a known password
func (tf *TestFixtures) CreateTestOfficer(username string) (*models.Officer, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("TestPass123!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	officer := &models.Officer{
		UUID:         uuid.New(),
		Username:     username,
		FullName:     "Ama Owusu",
		PasswordHash: string(hashedPassword),
		IsActive:     utils.ToPtr(true),
	}

	err = tf.DB.DB.Create(officer).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test officer: %w", err)
	}

	return officer, nil
}

// InfluencerOption mutates an influencer fixture before it is persisted
type InfluencerOption func(*models.Influencer)

// WithComplianceStatus sets the compliance status on an influencer fixture
func WithComplianceStatus(status models.ComplianceStatus) InfluencerOption {
	return func(i *models.Influencer) {
		i.ComplianceStatus = &status
	}
}

// WithAnnualRevenue sets the estimated annual revenue and derived tax liability
func WithAnnualRevenue(revenue float64) InfluencerOption {
	return func(i *models.Influencer) {
		i.EstimatedAnnualRevenue = &revenue
		liability := revenue * utils.FlatTaxRate
		i.TaxLiability = &liability
	}
}

// WithRegion sets the region on an influencer fixture
func WithRegion(region string) InfluencerOption {
	return func(i *models.Influencer) {
		i.Region = &region
	}
}

// WithComplianceScore sets the compliance score on an influencer fixture
func WithComplianceScore(score float64) InfluencerOption {
	return func(i *models.Influencer) {
		i.ComplianceScore = &score
	}
}

// CreateTestInfluencer creates an influencer on the given platform with a
// random unique handle. Options adjust compliance, revenue, and region.
func (tf *TestFixtures) CreateTestInfluencer(platform models.Platform, opts ...InfluencerOption) (*models.Influencer, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	influencer := &models.Influencer{
		UUID:     uuid.New(),
		Name:     fmt.Sprintf("Test Creator %s", randomDigits),
		Platform: platform,
		Handle:   fmt.Sprintf("@creator%s", randomDigits),
	}

	for _, opt := range opts {
		opt(influencer)
	}

	err := tf.DB.DB.Create(influencer).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test influencer: %w", err)
	}

	return influencer, nil
}

// CreateTestAssessment creates an assessment for the given influencer covering
// the previous calendar year at the flat rate
func (tf *TestFixtures) CreateTestAssessment(influencerID uint, taxableIncome float64, status models.AssessmentStatus) (*models.TaxAssessment, error) {
	now := utils.UTCNow()
	periodStart := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(now.Year()-1, time.December, 31, 23, 59, 59, 0, time.UTC)

	assessment := &models.TaxAssessment{
		UUID:                  uuid.New(),
		InfluencerID:          influencerID,
		AssessmentDate:        now,
		AssessmentPeriodStart: periodStart,
		AssessmentPeriodEnd:   periodEnd,
		TaxableIncome:         taxableIncome,
		TaxRate:               utils.FlatTaxRate,
		TaxAmount:             taxableIncome * utils.FlatTaxRate,
		Status:                status,
	}

	err := tf.DB.DB.Create(assessment).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test assessment: %w", err)
	}

	return assessment, nil
}

// CreateTestAuditLog inserts a minimal audit entry for the given action
func (tf *TestFixtures) CreateTestAuditLog(action string, entityType string, entityID *string) (*models.AuditLog, error) {
	entry := &models.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	err := tf.DB.DB.Create(entry).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create test audit log: %w", err)
	}

	return entry, nil
}
