package service

import "github.com/atelier-interiors/studio-cms/internal/core/domain"

func requiredErr(field string) error {
	return domain.NewValidationError(field, "is required")
}

func lengthErr(field string, max int) error {
	return domain.NewValidationError(field, "must be at most %d characters", max)
}

func rangeErr(field string, min, max float64) error {
	return domain.NewValidationError(field, "must be between %g and %g", min, max)
}
