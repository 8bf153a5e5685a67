// Package apperror defines the error taxonomy surfaced by the catalog
// usecases: validation failures, missing records and uniqueness conflicts.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// NotFoundError reports an operation that targeted an id with no record.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError carries one reason per offending field. It is raised
// against final values, after inheritance resolution and derivation.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Details[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidation(field, reason string) error {
	return &ValidationError{Details: map[string]string{field: reason}}
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Resource string
	Field    string
	Value    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Resource, e.Field, e.Value)
}

func NewConflict(resource, field, value string) error {
	return &ConflictError{Resource: resource, Field: field, Value: value}
}

func IsNotFound(err error) bool {
	var t *NotFoundError
	return errors.As(err, &t)
}

func IsValidation(err error) bool {
	var t *ValidationError
	return errors.As(err, &t)
}

func IsConflict(err error) bool {
	var t *ConflictError
	return errors.As(err, &t)
}

// HTTPStatus maps an error to the status code the HTTP layer responds with.
func HTTPStatus(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsValidation(err):
		return http.StatusBadRequest
	case IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Details extracts per-field context for the response body, if any.
func Details(err error) map[string]string {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Details
	}
	return nil
}
