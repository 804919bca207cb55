package config

import (
	"fmt"
	"slices"
	"strings"
)

type FieldError struct {
	// Field is the dotted path of the setting, e.g. "log.level".
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"text", "json"}
	outputFormats = []string{"tree", "yaml", "litter"}
)

// Validate collects every invalid setting of cfg into a ValidationError.
func Validate(cfg *Config) error {
	var errs []FieldError

	oneOf := func(field, value string, allowed []string) {
		if !slices.Contains(allowed, value) {
			errs = append(errs, FieldError{
				Field:   field,
				Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(allowed, ", "), value),
			})
		}
	}

	oneOf("log.level", cfg.Log.Level, logLevels)
	oneOf("log.format", cfg.Log.Format, logFormats)
	oneOf("output.format", cfg.Output.Format, outputFormats)

	if cfg.Output.Indent < 1 || cfg.Output.Indent > 8 {
		errs = append(errs, FieldError{Field: "output.indent", Message: "must be between 1 and 8"})
	}

	if cfg.Watch.Debounce < 0 {
		errs = append(errs, FieldError{Field: "watch.debounce", Message: "must not be negative"})
	}
	for i, ext := range cfg.Watch.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("watch.extensions[%d]", i),
				Message: fmt.Sprintf("must start with a dot, got %q", ext),
			})
		}
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}
