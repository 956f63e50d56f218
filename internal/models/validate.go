package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError describes a single invalid field in a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects field-level problems for one payload. It is
// returned by the Validate methods on the input and patch types and mapped
// to a 400 response at the handler boundary.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid payload"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, "; ")
}

type validator struct {
	errs []FieldError
}

func (v *validator) add(field, message string) {
	v.errs = append(v.errs, FieldError{Field: field, Message: message})
}

func (v *validator) require(field, s string) {
	if strings.TrimSpace(s) == "" {
		v.add(field, "is required")
	}
}

func (v *validator) maxLen(field, s string, n int) {
	if utf8.RuneCountInString(s) > n {
		v.add(field, fmt.Sprintf("must be at most %d characters", n))
	}
}

func (v *validator) oneOf(field, s string, allowed []string) {
	if s == "" {
		return
	}
	for _, a := range allowed {
		if s == a {
			return
		}
	}
	v.add(field, "must be one of: "+strings.Join(allowed, ", "))
}

func (v *validator) nonNegative(field string, f *float64) {
	if f != nil && *f < 0 {
		v.add(field, "must not be negative")
	}
}

func (v *validator) nonNegativeInt(field string, n *int) {
	if n != nil && *n < 0 {
		v.add(field, "must not be negative")
	}
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.errs}
}

func optStr(p **string, n int, field string, v *validator) {
	if *p == nil {
		return
	}
	s := strings.TrimSpace(**p)
	if s == "" {
		*p = nil
		return
	}
	*p = &s
	if n > 0 {
		v.maxLen(field, s, n)
	}
}
