package banner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ConfigValidator validates the configuration produced on save.
type ConfigValidator interface {
	Validate(config map[string]any) error
}

// DraftValidator checks that draft select fields hold catalog values.
type DraftValidator interface {
	ValidateContent(draft ContentDraft) error
	ValidateMeta(draft MetaDraft) error
}

// JSONSchemaValidator compiles the banner schema once and validates configuration maps.
type JSONSchemaValidator struct {
	schema map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewJSONSchemaValidator builds a validator for the given schema, or the
// banner schema when nil.
func NewJSONSchemaValidator(schema map[string]any) *JSONSchemaValidator {
	if schema == nil {
		schema = BannerSchema()
	}
	return &JSONSchemaValidator{schema: schema}
}

// Validate ensures the configuration satisfies the schema.
func (v *JSONSchemaValidator) Validate(config map[string]any) error {
	schema, err := v.compile()
	if err != nil {
		return err
	}
	var payload any = map[string]any{}
	if config != nil {
		data, err := json.Marshal(config)
		if err != nil {
			return fmt.Errorf("banner: marshal config: %w", err)
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("banner: normalize config: %w", err)
		}
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return nil
}

func (v *JSONSchemaValidator) compile() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		data, err := json.Marshal(v.schema)
		if err != nil {
			v.err = fmt.Errorf("banner: marshal schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		name := WidgetCode + ".json"
		if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
			v.err = fmt.Errorf("banner: load schema: %w", err)
			return
		}
		v.compiled, v.err = compiler.Compile(name)
		if v.err != nil {
			v.err = fmt.Errorf("banner: compile schema: %w", v.err)
		}
	})
	return v.compiled, v.err
}

// StructDraftValidator validates drafts through struct tags.
type StructDraftValidator struct {
	validate *validator.Validate
}

// NewStructDraftValidator registers the catalog rules on a fresh validator.
func NewStructDraftValidator() *StructDraftValidator {
	v := validator.New()
	register := func(tag string, allowed []string) {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for _, candidate := range allowed {
				if value == candidate {
					return true
				}
			}
			return false
		})
	}
	register("heading_size", optionValues(headingTypeSizes))
	register("subtitle_size", optionValues(subtitleTypeSizes))
	register("text_tag", optionValues(textTags))
	register("button_style", optionValues(buttonStyles))
	register("horizontal_align", optionValues(horizontalAligns))
	register("vertical_align", optionValues(verticalAligns))
	return &StructDraftValidator{validate: v}
}

// ValidateContent checks content draft select fields.
func (s *StructDraftValidator) ValidateContent(draft ContentDraft) error {
	return s.check(draft)
}

// ValidateMeta checks metadata draft select fields.
func (s *StructDraftValidator) ValidateMeta(draft MetaDraft) error {
	return s.check(draft)
}

func (s *StructDraftValidator) check(draft any) error {
	err := s.validate.Struct(draft)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("banner: validate draft: %w", err)
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s=%q", fe.Field(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidOption, strings.Join(parts, ", "))
}
