package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrObjectIsNotAvailable = errors.New("object is not available")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrExternalService      = errors.New("external service failed")
	ErrDataIsCorrupted      = errors.New("data is corrupted")
)

// sanitize flattens values into a single line so they are safe to log.
func sanitize(value any) string {
	s := fmt.Sprintf("%v", value)
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectIsNotAvailableError reports an object that exists but cannot take
// part in the requested operation, such as a product that is out of stock.
type ObjectIsNotAvailableError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectIsNotAvailableError(paramName string, id any) *ObjectIsNotAvailableError {
	return &ObjectIsNotAvailableError{ParamName: paramName, ID: id}
}

func NewObjectIsNotAvailableErrorWithCause(paramName string, id any, cause error) *ObjectIsNotAvailableError {
	return &ObjectIsNotAvailableError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectIsNotAvailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectIsNotAvailable, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectIsNotAvailableError) Unwrap() error {
	return ErrObjectIsNotAvailable
}

// ValueIsInvalidError reports a value that is present but not acceptable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing or blank value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ExternalServiceError reports that a remote dependency could not be reached
// or answered with something the caller cannot interpret.
type ExternalServiceError struct {
	ServiceName string
	Cause       error
}

func NewExternalServiceError(serviceName string) *ExternalServiceError {
	return &ExternalServiceError{ServiceName: serviceName}
}

func NewExternalServiceErrorWithCause(serviceName string, cause error) *ExternalServiceError {
	return &ExternalServiceError{ServiceName: serviceName, Cause: cause}
}

func (e *ExternalServiceError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrExternalService, e.ServiceName), e.Cause)
}

func (e *ExternalServiceError) Unwrap() error {
	return ErrExternalService
}

// DataIsCorruptedError reports persisted data that no longer decodes.
type DataIsCorruptedError struct {
	ParamName string
	Cause     error
}

func NewDataIsCorruptedError(paramName string) *DataIsCorruptedError {
	return &DataIsCorruptedError{ParamName: paramName}
}

func NewDataIsCorruptedErrorWithCause(paramName string, cause error) *DataIsCorruptedError {
	return &DataIsCorruptedError{ParamName: paramName, Cause: cause}
}

func (e *DataIsCorruptedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrDataIsCorrupted, e.ParamName), e.Cause)
}

func (e *DataIsCorruptedError) Unwrap() error {
	return ErrDataIsCorrupted
}
