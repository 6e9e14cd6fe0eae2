package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds produced by services. The web layer turns them into pages or
// JSON with HTTPStatus; calls to the booking service that fail come back as
// apiclient.RequestError and are not one of these kinds.

// NotFoundError: a trip, booking or draft does not exist.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return e.Resource + " not found"
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError: visitor or operator input rejected before any remote call.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return "invalid " + e.Field
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConflictError: the draft is in a state that forbids the action, e.g. a
// submission already in flight.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return e.Resource + " conflict"
	}
	return "conflict"
}

func (e ConflictError) Unwrap() error { return e.Err }

// InternalError: the draft store or a renderer failed. Msg is safe to show.
type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

func IsNotFound(err error) bool   { return is[NotFoundError](err) }
func IsValidation(err error) bool { return is[ValidationError](err) }
func IsConflict(err error) bool   { return is[ConflictError](err) }
func IsInternal(err error) bool   { return is[InternalError](err) }

// HTTPStatus maps a failure kind to its response status. It returns 0 for
// errors that are none of the kinds above, leaving the choice to the caller.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err):
		return http.StatusConflict
	case IsInternal(err):
		return http.StatusInternalServerError
	}
	return 0
}
