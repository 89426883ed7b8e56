/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrStoreRead is returned when records read from the store cannot be used
	ErrStoreRead = errors.New("store read failed")

	// ErrEmptyCollection is returned when a selection is requested from an empty collection
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// StoreReadError represents a read against a table whose result could not be
// decoded.
// It wraps the decode error so callers can still inspect it.
type StoreReadError struct {
	Table string
	Err   error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("scan of table %q failed: %v", e.Table, e.Err)
}

func (e *StoreReadError) Is(target error) bool {
	return target == ErrStoreRead
}

func (e *StoreReadError) Unwrap() error {
	return e.Err
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewStoreReadError creates a new StoreReadError
func NewStoreReadError(table string, err error) error {
	return &StoreReadError{Table: table, Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsStoreRead checks if an error is a store read error
func IsStoreRead(err error) bool {
	return errors.Is(err, ErrStoreRead)
}

// IsEmptyCollection checks if an error reports an empty collection
func IsEmptyCollection(err error) bool {
	return errors.Is(err, ErrEmptyCollection)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
