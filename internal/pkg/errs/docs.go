// Package errs provides standardized error types for the order desk.
// Every failure the core can report is one of these types, so callers
// classify errors with errors.Is against the sentinels and errors.As
// against the structs instead of matching on message text.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing or blank
//   - ValueIsInvalidError: a value is present but not acceptable
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - ObjectNotFoundError: a referenced object does not exist
//   - ObjectIsNotAvailableError: an object exists but cannot be used
//   - ExternalServiceError: a remote dependency failed or was unreachable
//   - DataIsCorruptedError: stored data could not be decoded
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
package errs
