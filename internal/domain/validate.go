package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationCode classifies a single field-level validation failure.
type ValidationCode string

const (
	CodeInvalidDay    ValidationCode = "invalid_day"
	CodeNameTooShort  ValidationCode = "name_too_short"
	CodeNegativeMacro ValidationCode = "negative_macro"
)

// MinNameRunes is the minimum meal name length, counted in runes after
// surrounding whitespace is trimmed.
const MinNameRunes = 2

// FieldError is a validation failure attributed to a single input field.
type FieldError struct {
	Field string
	Code  ValidationCode
	Msg   string
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }

// ValidationError aggregates every field failure found in one candidate so
// callers can surface them per field instead of as one opaque failure.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid meal: " + strings.Join(parts, "; ")
}

// ByField returns the failure recorded for the named field, if any.
func (e *ValidationError) ByField(field string) (FieldError, bool) {
	for _, f := range e.Fields {
		if f.Field == field {
			return f, true
		}
	}
	return FieldError{}, false
}

// ValidateMealName checks the name rule in isolation. Shared with the form
// layer so interactive per-field validation matches ledger validation.
func ValidateMealName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < MinNameRunes {
		return fmt.Errorf("name must be at least %d characters", MinNameRunes)
	}
	return nil
}

// ValidateMeal checks a candidate against the ledger's structural rules:
// the day must be one of the seven weekday identifiers, the name must be at
// least MinNameRunes long, and each macro value must be non-negative. The
// rules are independent; every violated rule is reported. A nil return means
// the record may be appended to the ledger. ValidateMeal never touches the
// ledger itself.
func ValidateMeal(m *MealRecord) error {
	var fields []FieldError

	if !m.Day.IsValid() {
		fields = append(fields, FieldError{
			Field: "day",
			Code:  CodeInvalidDay,
			Msg:   fmt.Sprintf("%q is not a weekday", string(m.Day)),
		})
	}

	if err := ValidateMealName(m.Name); err != nil {
		fields = append(fields, FieldError{
			Field: "name",
			Code:  CodeNameTooShort,
			Msg:   err.Error(),
		})
	}

	macros := []struct {
		field string
		grams float64
	}{
		{"protein", m.Protein},
		{"carbs", m.Carbs},
		{"fat", m.Fat},
	}
	for _, mac := range macros {
		if mac.grams < 0 {
			fields = append(fields, FieldError{
				Field: mac.field,
				Code:  CodeNegativeMacro,
				Msg:   fmt.Sprintf("%s must not be negative", mac.field),
			})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
