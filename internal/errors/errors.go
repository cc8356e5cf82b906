// Package errors is our internal errors package. It should be used in place of the standard "errors" package,
// "golang.org/x/xerrors", or "fmt.Errorf".
// This package ensures that all errors have a correct category & collect stack-traces.
package errors

import "golang.org/x/xerrors"

// ConfigurationError represents a configuration error. It carries enough detail to tell an end-user which
// configuration value caused the error and how to resolve it.
type ConfigurationError struct {
	title      string
	desc       string
	resolution string
}

// NewConfigurationError returns a new ConfigurationError
func NewConfigurationError(title string, description string, resolution string) ConfigurationError {
	return ConfigurationError{title: title, desc: description, resolution: resolution}
}

// AsConfigurationError checks whether the error is a configuration error
func AsConfigurationError(err error) (ConfigurationError, bool) {
	var e ConfigurationError
	ok := As(err, &e)
	return e, ok
}

// Error returns the error message of this error
func (e ConfigurationError) Error() string {
	return e.title
}

// Description returns the longer description of this error
func (e ConfigurationError) Description() string {
	return e.desc
}

// Resolution returns the suggested resolution for this error
func (e ConfigurationError) Resolution() string {
	return e.resolution
}

// Type returns the category name of this error
func (e ConfigurationError) Type() string {
	return "Configuration Error"
}

// InputError is an error caused by the provided input, i.e. a report document that cannot be processed.
type InputError error

// NewInputError returns a new InputError
func NewInputError(msg string, a ...any) InputError {
	return xerrors.Errorf(msg, a...)
}

// AsInputError checks whether the error is an input error
func AsInputError(err error) (InputError, bool) {
	var e InputError
	ok := As(err, &e)
	return e, ok
}

// InternalError is an internal error. This error type should only be used if an end-user cannot act upon it and would
// need to reach out to us for support.
type InternalError error

// NewInternalError returns a new InternalError
func NewInternalError(msg string, a ...any) InternalError {
	return xerrors.Errorf(msg, a...)
}

// AsInternalError checks whether the error is an internal error
func AsInternalError(err error) (InternalError, bool) {
	var e InternalError
	ok := As(err, &e)
	return e, ok
}

// SystemError is returned when the CLI encountered a system error. This is most likely either an error during file
// read or a network error.
type SystemError error

// NewSystemError returns a new SystemError
func NewSystemError(msg string, a ...any) SystemError {
	return xerrors.Errorf(msg, a...)
}

// AsSystemError checks whether the error is a system error
func AsSystemError(err error) (SystemError, bool) {
	var e SystemError
	ok := As(err, &e)
	return e, ok
}
