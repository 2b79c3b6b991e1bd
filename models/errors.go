package models

import "fmt"

// ErrorValidation is malformed or missing input (400).
type ErrorValidation struct {
	Message string
	Details interface{}
}

func (e ErrorValidation) Error() string { return describe(e.Message, e.Details) }

// ErrorUnprocessable is well-formed input with invalid content (422).
type ErrorUnprocessable struct {
	Message string
	Details interface{}
}

func (e ErrorUnprocessable) Error() string { return describe(e.Message, e.Details) }

// ErrorConflict is an id or slug collision (409).
type ErrorConflict struct {
	Message string
	Details interface{}
}

func (e ErrorConflict) Error() string { return describe(e.Message, e.Details) }

// ErrorNotFound covers missing records and records not visible publicly (404).
type ErrorNotFound struct {
	Message string
	Details interface{}
}

func (e ErrorNotFound) Error() string { return describe(e.Message, e.Details) }

// ErrorStorage is a failed store operation. Message is safe to return to
// callers; Err is only logged.
type ErrorStorage struct {
	Message string
	Err     error
}

func (e ErrorStorage) Error() string { return fmt.Sprintf("%s: %v", e.Message, e.Err) }

func (e ErrorStorage) Unwrap() error { return e.Err }

// ErrorInternalServer is any other unexpected failure.
type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string { return fmt.Sprintf("%s: %v", e.Message, e.Err) }

func (e ErrorInternalServer) Unwrap() error { return e.Err }

func describe(message string, details interface{}) string {
	if details == nil {
		return message
	}
	return fmt.Sprintf("%s: %v", message, details)
}
