package model

import "fmt"

// InputError reports a rejected input value (bad quantity, negative VAT,
// empty line-item list).
type InputError struct {
	Field   string
	Value   string
	Message string
}

func (e *InputError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid input on %s: %s (value=%s)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("invalid input on %s: %s", e.Field, e.Message)
}

// NewInputError creates a new input error.
func NewInputError(field, value, message string) *InputError {
	return &InputError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// MissingFieldError reports an absent mandatory party or document field.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s.%s", e.Entity, e.Field)
}

// NewMissingFieldError creates a new missing-field error.
func NewMissingFieldError(entity, field string) *MissingFieldError {
	return &MissingFieldError{
		Entity: entity,
		Field:  field,
	}
}

// DateOverflowError reports date arithmetic leaving the representable range.
type DateOverflowError struct {
	Base string
	Days int
}

func (e *DateOverflowError) Error() string {
	return fmt.Sprintf("date overflow: %s + %d days is outside the representable date range", e.Base, e.Days)
}

// NewDateOverflowError creates a new date-overflow error.
func NewDateOverflowError(base string, days int) *DateOverflowError {
	return &DateOverflowError{
		Base: base,
		Days: days,
	}
}

// EncodingError reports document content that cannot be represented in the
// target encoding.
type EncodingError struct {
	Element string
	Message string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error in %s: %s", e.Element, e.Message)
}

// NewEncodingError creates a new encoding error.
func NewEncodingError(element, message string) *EncodingError {
	return &EncodingError{
		Element: element,
		Message: message,
	}
}
