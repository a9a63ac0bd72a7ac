package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	mu       sync.Mutex
	instance *validator.Validate
	errors   map[string]any
}

var (
	defaultValidator     *Validator
	defaultValidatorOnce sync.Once
)

func GetDefaultValidator() *Validator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = MakeValidatorFrom(
			validator.New(validator.WithRequiredStructEnabled()),
		)
	})

	return defaultValidator
}

func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	abstract.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{
		instance: abstract,
		errors:   make(map[string]any),
	}
}

// Check validates the given struct without touching the shared error bag, so
// it is safe to call from concurrent request handlers.
func (v *Validator) Check(data any) map[string]any {
	err := v.instance.Struct(data)

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]any{"_": err.Error()}
	}

	messages := make(map[string]any, len(validationErrors))

	for _, item := range validationErrors {
		messages[item.Field()] = describe(item)
	}

	return messages
}

func (v *Validator) Passes(data any) (bool, error) {
	messages := v.Check(data)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.errors = make(map[string]any)

	if len(messages) == 0 {
		return true, nil
	}

	v.errors = messages

	return false, fmt.Errorf("validation failed: %d field(s) rejected", len(messages))
}

func (v *Validator) Rejects(data any) (bool, error) {
	passes, err := v.Passes(data)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]any {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	encoded, err := json.Marshal(v.GetErrors())

	if err != nil {
		return ""
	}

	return string(encoded)
}

func describe(item validator.FieldError) string {
	switch item.Tag() {
	case "required", "required_if":
		return "the field is required"
	case "oneof":
		return fmt.Sprintf("the field must be one of [%s]", item.Param())
	case "max":
		return fmt.Sprintf("the field may not be greater than %s", item.Param())
	case "min":
		return fmt.Sprintf("the field must be at least %s", item.Param())
	default:
		return fmt.Sprintf("the field failed the [%s] rule", item.Tag())
	}
}
