package models

import (
	"errors"
	"fmt"
)

// ErrNoFields is returned when constructing a model with an empty field
// list.
var ErrNoFields = errors.New("model must have at least one field")

// DuplicateFieldError is returned when constructing a model whose field
// names are not unique.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field name: %s", e.Field)
}

// UnknownFieldError is returned when a note references a field that does
// not exist in its model.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field: %s", e.Field)
}
