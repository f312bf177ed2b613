// Package errors provides custom error types and utilities for file-shredder.
//
// This package provides error handling for:
// - File operations (stat, open, write, delete)
// - Configuration errors
// - Validation errors
// - Multi-error handling
package errors

import (
	"errors"
	"fmt"
)

// Error categories for file-shredder operations
var (
	ErrNotFound      = errors.New("file not found")
	ErrIsDirectory   = errors.New("path is a directory")
	ErrOpen          = errors.New("cannot open file")
	ErrWrite         = errors.New("failed to write to file")
	ErrDelete        = errors.New("failed to delete file")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConfiguration = errors.New("configuration error")
)

// Op names the file operation that failed.
type Op string

const (
	OpStat   Op = "stat"
	OpOpen   Op = "open"
	OpWrite  Op = "write"
	OpDelete Op = "delete"
)

// FileError represents a failed operation on a single target file.
type FileError struct {
	Op     Op
	Path   string
	Offset int64
	Err    error
}

func (e *FileError) Error() string {
	if e.Op == OpWrite {
		return fmt.Sprintf("%s %s at offset %d: %v", e.Op, e.Path, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	switch e.Op {
	case OpOpen:
		return target == ErrOpen
	case OpWrite:
		return target == ErrWrite
	case OpDelete:
		return target == ErrDelete
	default:
		return false
	}
}

// NewFileError creates a new file error.
func NewFileError(op Op, path string, err error) *FileError {
	return &FileError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// NewWriteError creates a write error recording how far the overwrite got.
func NewWriteError(path string, offset int64, err error) *FileError {
	return &FileError{
		Op:     OpWrite,
		Path:   path,
		Offset: offset,
		Err:    err,
	}
}

// NotFoundError reports a target path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DirectoryError reports a target path that is a directory.
type DirectoryError struct {
	Path string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("path is a directory: %s", e.Path)
}

func (e *DirectoryError) Is(target error) bool {
	return target == ErrIsDirectory
}

// IsNotFound checks if an error represents a missing target
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDirectory checks if an error represents a directory target
func IsDirectory(err error) bool {
	return errors.Is(err, ErrIsDirectory)
}

// IsOpen checks if an error is an open failure
func IsOpen(err error) bool {
	return errors.Is(err, ErrOpen)
}

// IsWrite checks if an error is a write failure
func IsWrite(err error) bool {
	return errors.Is(err, ErrWrite)
}

// IsDelete checks if an error is a delete failure
func IsDelete(err error) bool {
	return errors.Is(err, ErrDelete)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsValidation checks if an error is validation-related
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// MultiError represents multiple errors that occurred together
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Errors[0].Error(), len(e.Errors)-1)
}

func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// Join creates a MultiError from multiple errors, filtering out nils
func Join(errs ...error) error {
	var nonNilErrors []error
	for _, err := range errs {
		if err != nil {
			nonNilErrors = append(nonNilErrors, err)
		}
	}

	if len(nonNilErrors) == 0 {
		return nil
	}
	if len(nonNilErrors) == 1 {
		return nonNilErrors[0]
	}

	return &MultiError{Errors: nonNilErrors}
}
