// Package errs provides the typed errors shared by the storefront packages.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) used with errors.Is
//   - a struct type carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The available types are:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside of its allowed bounds
//   - ObjectNotFoundError: a stored object could not be found
package errs
