package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/storeconf/internal/logger"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
// The storage section is resolved, not validated, here: its entries are
// type-checked by the storage registry builder.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return errors.New("configuration validation error: config is nil")
	}

	validate := validator.New()

	// Level and format names are the ones the logger itself accepts.
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		return logger.KnownLevel(fl.Field().String())
	})
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		return logger.KnownFormat(fl.Field().String())
	})

	// Register custom validation for general file path
	_ = validate.RegisterValidation("filepath", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("configuration validation error: %w", err)
	}

	var messages []string
	for _, e := range errs {
		msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			msg += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		messages = append(messages, msg)
	}
	return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
}
