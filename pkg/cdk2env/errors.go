package cdk2env

import (
	stderrors "errors"

	"cdk2env/internal/errors"
)

// Error is the error type returned by Convert
type Error = errors.ConversionError

// ErrorKind classifies an Error
type ErrorKind = errors.ErrorType

const (
	// InputNotFound: the input path does not exist; the message includes the path
	InputNotFound ErrorKind = errors.InputNotFoundType
	// InputReadError: the input exists but cannot be read
	InputReadError ErrorKind = errors.InputReadType
	// InvalidJSON: the input is not well-formed JSON
	InvalidJSON ErrorKind = errors.InvalidJSONType
	// InvalidRootShape: the JSON root is not an object
	InvalidRootShape ErrorKind = errors.InvalidRootShapeType
	// OutputWriteError: the script could not be written
	OutputWriteError ErrorKind = errors.OutputWriteType
)

// KindOf returns the kind of err, or "" when err is not an *Error
func KindOf(err error) ErrorKind {
	var convErr *Error
	if stderrors.As(err, &convErr) {
		return convErr.Type
	}
	return ""
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
