package services

import (
	"errors"
	"fmt"
)

var (
	ErrPDFExtraction       = errors.New("error extracting text from PDF. Please upload a valid document")
	ErrEmptyResponse       = errors.New("empty response from model")
	ErrNoJSONFound         = errors.New("JSON format not found in model response")
	ErrMalformedJSON       = errors.New("error parsing JSON response")
	ErrInterviewFinished   = errors.New("interview is complete, restart to begin a new one")
	ErrInterviewNotStarted = errors.New("interview has not been started")
)

// ValidationError is a missing or invalid form field. It blocks the
// current action and nothing else.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// TransportError wraps a failure raised by the model SDK call itself.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// NoJSONFoundError keeps the raw model text for debugging.
type NoJSONFoundError struct {
	Raw string
}

func (e *NoJSONFoundError) Error() string {
	return ErrNoJSONFound.Error()
}

func (e *NoJSONFoundError) Is(target error) bool {
	return target == ErrNoJSONFound
}

// MalformedJSONError keeps the raw model text and the decoder error.
type MalformedJSONError struct {
	Raw   string
	Cause error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformedJSON.Error(), e.Cause)
}

func (e *MalformedJSONError) Is(target error) bool {
	return target == ErrMalformedJSON
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Cause
}

// RawResponse returns the model text attached to an extraction error, if any.
func RawResponse(err error) string {
	var noJSON *NoJSONFoundError
	if errors.As(err, &noJSON) {
		return noJSON.Raw
	}
	var malformed *MalformedJSONError
	if errors.As(err, &malformed) {
		return malformed.Raw
	}
	return ""
}
