package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Is reports whether any error in err's chain is of type T.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// ValidationKind names the way a payload broke its contract.
type ValidationKind string

const (
	MissingField   ValidationKind = "NOT_CONTAIN_NEEDED_PROPERTY"
	WrongType      ValidationKind = "NOT_MEET_DATA_TYPE_SPECIFICATION"
	LimitChar      ValidationKind = "USERNAME_LIMIT_CHAR"
	RestrictedChar ValidationKind = "USERNAME_CONTAIN_RESTRICTED_CHARACTER"
)

// ValidationError is raised when a value type is constructed from a bad payload.
// Entity is the value type name, e.g. ADD_THREAD.
type ValidationError struct {
	Entity string
	Kind   ValidationKind
	Field  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s (field %q)", e.Code(), e.Field)
}

// Code is the stable identifier the HTTP layer translates into a user-facing message.
func (e *ValidationError) Code() string {
	return e.Entity + "." + string(e.Kind)
}

func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string   { return e.Message }
func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

// AuthorizationError means the caller is known but does not own the resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string   { return e.Message }
func (e *AuthorizationError) StatusCode() int { return http.StatusForbidden }

// AuthenticationError means the caller could not be identified.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string   { return e.Message }
func (e *AuthenticationError) StatusCode() int { return http.StatusUnauthorized }

// InvariantError is a business rule violation that is not tied to payload shape.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string   { return e.Message }
func (e *InvariantError) StatusCode() int { return http.StatusBadRequest }

func IsNotFound(err error) bool {
	return Is[*NotFoundError](err)
}
