package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator that reports mapstructure key names.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate checks a struct against its validate tags.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, fmt.Sprintf("%s failed %s (value: '%v')", keyOf(e.Namespace()), e.Tag(), e.Value()))
	}

	return fmt.Errorf("%w:\n  %s", ErrInvalidConfig, strings.Join(messages, "\n  "))
}

// keyOf turns "Config.search.actors" into "search.actors".
func keyOf(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

// Validate checks the whole configuration.
func Validate(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
