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
	// ErrInvalidIdentifier is returned when identifier text fails validation
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrAlreadyRegistered is returned when registering an identifier that is already taken
	ErrAlreadyRegistered = errors.New("registration already exists")

	// ErrNotFound is returned when a named registry or tag definition is not found
	ErrNotFound = errors.New("registry entry not found")

	// ErrUnknownFormat is returned when no decoder is registered for a tag data format
	ErrUnknownFormat = errors.New("no decoder registered for format")
)

// InvalidIdentifierError represents an identifier that failed validation
type InvalidIdentifierError struct {
	Text   string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q: %s", e.Text, e.Reason)
}

func (e *InvalidIdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// AlreadyRegisteredError represents a duplicate registration attempt
type AlreadyRegisteredError struct {
	ID string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("registration with id %q already exists", e.ID)
}

func (e *AlreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyRegistered
}

// NotFoundError represents a lookup miss surfaced as an error
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnknownFormatError represents a tag data document in an unregistered format
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("no decoder registered for format %q", e.Format)
}

func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrUnknownFormat
}

// Helper functions for creating errors

// NewInvalidIdentifierError creates a new InvalidIdentifierError
func NewInvalidIdentifierError(text, reason string) error {
	return &InvalidIdentifierError{Text: text, Reason: reason}
}

// NewAlreadyRegisteredError creates a new AlreadyRegisteredError
func NewAlreadyRegisteredError(id string) error {
	return &AlreadyRegisteredError{ID: id}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}

// NewUnknownFormatError creates a new UnknownFormatError
func NewUnknownFormatError(format string) error {
	return &UnknownFormatError{Format: format}
}

// IsInvalidIdentifier checks if an error is an identifier validation error
func IsInvalidIdentifier(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier)
}

// IsAlreadyRegistered checks if an error is a duplicate registration error
func IsAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnknownFormat checks if an error is an unknown format error
func IsUnknownFormat(err error) bool {
	return errors.Is(err, ErrUnknownFormat)
}
