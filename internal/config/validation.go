package config

import (
	"fmt"
	"strings"

	"github.com/docsmith/go-docgen-api/internal/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks the resolved configuration before the server starts.
// Credentials are optional individually; prefix mismatches are configuration
// errors because a malformed key would silently disable its provider.
func (c *Config) Validate() *errors.APIError {
	if err := validate.Struct(c.Provider); err != nil {
		return formatValidationError(err)
	}
	if err := validate.Struct(c.Server); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) *errors.APIError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewConfigurationError(fmt.Sprintf("Configuration validation failed: %v", err))
	}

	var details []string
	for _, fieldErr := range validationErrors {
		switch fieldErr.Tag() {
		case "startswith":
			details = append(details, fmt.Sprintf("field '%s' must start with '%s'", fieldErr.Field(), fieldErr.Param()))
		case "required":
			details = append(details, fmt.Sprintf("field '%s' is required", fieldErr.Field()))
		case "min":
			details = append(details, fmt.Sprintf("field '%s' is below the minimum of %s", fieldErr.Field(), fieldErr.Param()))
		case "max":
			details = append(details, fmt.Sprintf("field '%s' exceeds the maximum of %s", fieldErr.Field(), fieldErr.Param()))
		case "url":
			details = append(details, fmt.Sprintf("field '%s' must be a valid URL", fieldErr.Field()))
		default:
			details = append(details, fmt.Sprintf("field '%s' failed '%s' validation", fieldErr.Field(), fieldErr.Tag()))
		}
	}

	return errors.NewConfigurationError("Configuration validation failed: " + strings.Join(details, "; "))
}
