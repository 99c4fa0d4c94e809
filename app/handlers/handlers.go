// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"fmt"
	"strconv"

	"github.com/kwabenaosei/Sankofa/app/middleware"
	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// collectClientMetadata gathers the caller's IP, user agent, request ID and
// the authenticated officer identity for audit logging
func collectClientMetadata(c fiber.Ctx) *businessflow.ClientMetadata {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	if requestID := c.Get("X-Request-ID"); requestID != "" {
		metadata.SetRequestID(requestID)
	}
	if officerID, ok := middleware.GetOfficerIDFromContext(c); ok && officerID > 0 {
		metadata.AddAdditional("officer_id", strconv.FormatUint(uint64(officerID), 10))
	}
	if actorName, ok := c.Locals("officer_username").(string); ok && actorName != "" {
		metadata.AddAdditional("actor_name", actorName)
	}
	return metadata
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "url":
		return err.Field() + " must be a valid URL"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
	default:
		return err.Field() + " is invalid"
	}
}
