package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrParametersValidation matches every request validation failure via errors.Is.
	ErrParametersValidation = errors.New("parameters validation error")

	// ErrDataValidation matches every response validation failure via errors.Is.
	ErrDataValidation = errors.New("data validation error")
)

// Kind discriminates the two structured validation failures.
type Kind string

const (
	// KindParametersValidation is a client input problem.
	KindParametersValidation Kind = "parametersValidationError"
	// KindDataValidation is an outgoing payload that breaks its own schema.
	KindDataValidation Kind = "dataValidationError"
)

// Severity is the reporting level attached to an Error.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

const (
	parametersMessage = "Invalid request parameters"
	dataMessage       = "Data validation did not pass"
)

// ErrorData carries the details of a structured validation error.
type ErrorData struct {
	// Errors holds every field failure of a request, in rule order.
	Errors ValidationErrors `json:"errors,omitempty"`
	// Detail is the schema engine's violation text for data validation errors.
	Detail string `json:"error,omitempty"`
	// Cause is the raw schema engine error.
	Cause error `json:"-"`
}

// Error is the single structured error raised by validation entry points.
type Error struct {
	Message  string    `json:"message"`
	Kind     Kind      `json:"kind"`
	Severity Severity  `json:"severity"`
	Data     ErrorData `json:"data"`
}

// NewParametersError wraps the full outcome of a failed request validation.
func NewParametersError(errs ValidationErrors) *Error {
	return &Error{
		Message:  parametersMessage,
		Kind:     KindParametersValidation,
		Severity: SeverityWarning,
		Data:     ErrorData{Errors: errs},
	}
}

// NewDataError wraps a schema violation found in an outgoing payload.
func NewDataError(cause error) *Error {
	e := &Error{
		Message:  dataMessage,
		Kind:     KindDataValidation,
		Severity: SeverityError,
		Data:     ErrorData{Cause: cause},
	}
	if cause != nil {
		e.Data.Detail = cause.Error()
	}
	return e
}

func (e *Error) Error() string {
	switch {
	case len(e.Data.Errors) > 0:
		return fmt.Sprintf("%s: %s", e.Message, e.Data.Errors.Error())
	case e.Data.Detail != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Data.Detail)
	default:
		return e.Message
	}
}

// Unwrap exposes the kind sentinel and, for data errors, the schema engine error.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	switch e.Kind {
	case KindParametersValidation:
		errs = append(errs, ErrParametersValidation)
	case KindDataValidation:
		errs = append(errs, ErrDataValidation)
	}
	if e.Data.Cause != nil {
		errs = append(errs, e.Data.Cause)
	}
	return errs
}

// AsError extracts a structured validation error from err.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}

	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// ExtractValidationErrors returns the field failures carried by err, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	if verr, ok := AsError(err); ok {
		return verr.Data.Errors
	}
	return nil
}

func IsParametersError(err error) bool {
	return errors.Is(err, ErrParametersValidation)
}

func IsDataError(err error) bool {
	return errors.Is(err, ErrDataValidation)
}
