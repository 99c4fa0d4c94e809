// Package utils provides utility functions for the application.
package utils

import "github.com/google/uuid"

func ToPtr[T any](v T) *T {
	return &v
}

func IsTrue(b *bool) bool {
	return b != nil && *b
}

// ParseUUID parses a string into a UUID.
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// Float64OrZero dereferences an optional numeric field, treating absence as zero.
func Float64OrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// StringOr returns the pointed-to string or the fallback when absent.
func StringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
