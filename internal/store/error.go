package store

import (
	"errors"
	"fmt"
)

type ErrorReason string

const (
	REASON_FAILED_TO_FETCH ErrorReason = "FAILED_TO_FETCH"
	REASON_FAILED_TO_WRITE ErrorReason = "FAILED_TO_WRITE"
	REASON_ALREADY_EXISTS  ErrorReason = "ALREADY_EXISTS"
	REASON_SCHEMA_MISSING  ErrorReason = "SCHEMA_MISSING"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newStoreError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newStoreError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newStoreError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewAlreadyExistsError(message string, cause error) *Error {
	return newStoreError(REASON_ALREADY_EXISTS, message, cause)
}

func NewSchemaMissingError(message string, cause error) *Error {
	return newStoreError(REASON_SCHEMA_MISSING, message, cause)
}

// HasReason reports whether err is a store error with the given reason.
func HasReason(err error, reason ErrorReason) bool {
	var storeErr *Error
	return errors.As(err, &storeErr) && storeErr.Reason == reason
}
