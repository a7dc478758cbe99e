package middleware

import (
	"strconv"

	"kuispintar/internal/domain"
	"kuispintar/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSessionParams validates level, subject and count query
// parameters for session requests.
func (vm *ValidationMiddleware) ValidateSessionParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		level := c.Query("level")
		subject := c.Query("subject")

		count := 0
		if countStr := c.Query("count"); countStr != "" {
			parsed, err := strconv.Atoi(countStr)
			if err != nil {
				return domain.ValidationErrors{
					domain.NewInvalidFormatError("count", countStr),
				}
			}
			count = parsed
		}

		if errs := vm.validator.ValidateSessionParams(level, subject, count); len(errs) > 0 {
			return errs // handled by the ErrorHandler middleware
		}

		// Store validated values in context for handlers to use
		c.Locals("validated_level", level)
		c.Locals("validated_subject", subject)
		c.Locals("validated_count", count)
		return c.Next()
	}
}

// ValidateLevelParam validates the level query parameter
func (vm *ValidationMiddleware) ValidateLevelParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		level := c.Query("level")
		if errs := vm.validator.ValidateLevel(level); len(errs) > 0 {
			return errs
		}
		c.Locals("validated_level", level)
		return c.Next()
	}
}
