package validation

import (
	"strings"

	"kuispintar/internal/domain"
)

const maxSignatureLength = 256

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionParams validates the session request parameters.
// Unknown subjects are accepted: the engine degrades to its default
// catalog instead of rejecting them, so validation only requires the
// fields to be present and the level to be a known tier.
func (v *Validator) ValidateSessionParams(level, subject string, count int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(level) == "" {
		errors = append(errors, domain.NewMissingFieldError("level"))
	} else if !domain.Level(level).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("level", level))
	}

	if strings.TrimSpace(subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}

	if count < 0 {
		errors = append(errors, domain.NewOutOfRangeError("count", count, 1, 50))
	}

	return errors
}

// ValidateSubmitAnswer validates the submit-answer request body
func (v *Validator) ValidateSubmitAnswer(subject, signature string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}

	if strings.TrimSpace(signature) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_signature"))
	} else if len(signature) > maxSignatureLength {
		errors = append(errors, domain.NewOutOfRangeError("question_signature", len(signature), 1, maxSignatureLength))
	}

	return errors
}

// ValidateLevel validates a level query parameter
func (v *Validator) ValidateLevel(level string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(level) == "" {
		errors = append(errors, domain.NewMissingFieldError("level"))
	} else if !domain.Level(level).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("level", level))
	}

	return errors
}
