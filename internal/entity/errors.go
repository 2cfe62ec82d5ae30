package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by catalog writes. Validation failures are local
// to one record and never retried; the caller fixes the input and resubmits.
var (
	ErrMissingChoices      = errors.New("choice-like variable has no choices")
	ErrInvertedBounds      = errors.New("min_value is greater than max_value")
	ErrDanglingChoiceOrder = errors.New("choice_order references an unknown choice code")
	ErrCyclicParent        = errors.New("parent chain forms a cycle")
	ErrUnknownDataType     = errors.New("unknown data type")
	ErrDuplicateCode       = errors.New("variable code already exists")
	ErrNotFound            = errors.New("record not found")
)

// ValidationError ties a structural failure to the offending field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
