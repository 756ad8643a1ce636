package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	oerrors "github.com/nestgen/cli/internal/errors"
	"github.com/nestgen/cli/internal/templates"
)

//go:embed schema/config.cue
var schemaFS embed.FS

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Is reports whether target is ErrValidation.
func (e ValidationErrors) Is(target error) bool {
	return target == oerrors.ErrValidation
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schemaData, err := schemaFS.ReadFile("schema/config.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}

	compiled := ctx.CompileBytes(schemaData, cue.Filename("config.cue"))
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	schema := compiled.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema has no #Config definition")
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate validates a loaded configuration, including the template
// constants it produces.
func (v *Validator) Validate(cfg *Config) error {
	errs := v.check(v.ctx.Encode(cfg))

	if err := templates.ValidateConstants(cfg.Constants()); err != nil {
		for _, e := range unjoin(err) {
			var detail *oerrors.DetailError
			if errors.As(e, &detail) {
				errs = append(errs, ValidationError{Field: detail.Field, Message: detail.Message})
			} else {
				errs = append(errs, ValidationError{Field: "constants", Message: e.Error()})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFile validates the raw contents of a configuration file. Only the
// keys present in the file are checked; unknown keys are rejected.
func (v *Validator) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return oerrors.NewNotFoundError(
				fmt.Sprintf("config file %s does not exist", path), path,
				"run 'nestgen config init' to create one")
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ValidationErrors{{Field: "(file)", Message: err.Error()}}
	}
	if doc == nil {
		return nil
	}

	if errs := v.check(v.ctx.Encode(doc)); len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *Validator) check(val cue.Value) ValidationErrors {
	if val.Err() != nil {
		return ValidationErrors{{Field: "(value)", Message: val.Err().Error()}}
	}

	err := v.schema.Unify(val).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		path := e.Path()
		if len(path) > 0 && strings.HasPrefix(path[0], "#") {
			path = path[1:]
		}
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   strings.Join(path, "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return errs
}

func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
