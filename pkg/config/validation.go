package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/marmos91/vfsemu/pkg/vfs"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their config key ("filesystem.drive"), not their Go name
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	_ = validate.RegisterValidation("drive", func(fl validator.FieldLevel) bool {
		return vfs.ValidDriveName(fl.Field().String())
	})
}

// Validate validates the configuration using struct tags and custom rules.
//
// Log level normalization is handled in ApplyDefaults, not here, so both
// "debug" and "DEBUG" are accepted.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return validateCustomRules(cfg)
}

// validateCustomRules checks constraints spanning several fields.
func validateCustomRules(cfg *Config) error {
	if cfg.Metrics.Enabled && cfg.Metrics.Textfile == "" {
		return fmt.Errorf("metrics: textfile is required when metrics are enabled")
	}

	return nil
}

// formatValidationError reports the first failed field as
// "<config key>: <reason> (got <value>)".
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]
	key := strings.TrimPrefix(e.Namespace(), "Config.")

	var reason string
	switch e.Tag() {
	case "required":
		reason = "is required"
	case "oneof":
		reason = "must be one of [" + e.Param() + "]"
	case "drive":
		reason = "must be a drive letter followed by a colon"
	default:
		reason = fmt.Sprintf("failed the '%s' check", e.Tag())
	}

	return fmt.Errorf("%s: %s (got %q)", key, reason, fmt.Sprint(e.Value()))
}
