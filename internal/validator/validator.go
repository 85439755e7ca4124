package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator - обертка над go-playground/validator с нашими enum-правилами.
type Validator struct {
	validate *validator.Validate
}

// ValidationError - ошибка валидации с деталями по полям
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for field, msg := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// New создает валидатор с зарегистрированными кастомными правилами
func New() *Validator {
	v := validator.New()
	registerCustomRules(v)
	return &Validator{validate: v}
}

// Validate проверяет структуру и возвращает *ValidationError при провале
func (v *Validator) Validate(obj interface{}) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	details := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		details[fe.Field()] = messageForTag(fe)
	}
	return &ValidationError{Errors: details}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		if strings.HasPrefix(fe.Tag(), "is-") {
			return fmt.Sprintf("%q is not an allowed value", fe.Value())
		}
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
