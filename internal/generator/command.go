package generator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ruboto-labs/ruboto/internal/manifest"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := manifest.RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// Command asks for one component to be generated into (or removed from) an
// existing project.
type Command struct {
	ProjectDir string `validate:"required"`
	Kind       string `validate:"required"`
	Name       string // checked by naming.Validate
}

// AppCommand asks for a new project.
type AppCommand struct {
	Path         string `validate:"required"`
	Package      string `validate:"required"`
	Name         string // defaults to the camelized last package segment
	Target       int    `validate:"gte=3"`
	MinSDK       int    `validate:"gte=3,ltefield=Target"`
	Platform     string `validate:"required,platform"`
	JRubyVersion string `validate:"required_if=Platform STANDALONE"`
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}
	return nil
}
