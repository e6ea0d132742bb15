package errors

import (
	"fmt"
	"runtime"
)

// ErrorType classifies a failure by the stage that produced it.
type ErrorType string

const (
	ErrorTypeConfiguration ErrorType = "configuration"
	ErrorTypeEnvironment   ErrorType = "environment"
	ErrorTypeValidation    ErrorType = "validation"
)

// StructuredError carries the failing operation and an optional cause.
type StructuredError struct {
	Type      ErrorType
	Operation string
	Message   string
	Cause     error
	Context   map[string]any
	Stack     []uintptr
}

// Error implements the error interface
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Type, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Operation, e.Message)
}

// Unwrap returns the underlying cause
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new structured error
func New(errType ErrorType, operation, message string) *StructuredError {
	return &StructuredError{
		Type:      errType,
		Operation: operation,
		Message:   message,
		Context:   make(map[string]any),
		Stack:     captureStack(),
	}
}

// Wrap wraps err with a type and operation. A nil err yields nil.
func Wrap(err error, errType ErrorType, operation, message string) *StructuredError {
	if err == nil {
		return nil
	}
	return &StructuredError{
		Type:      errType,
		Operation: operation,
		Message:   message,
		Cause:     err,
		Context:   make(map[string]any),
		Stack:     captureStack(),
	}
}

// WithContext attaches a key/value pair, e.g. the offending flag value.
func (e *StructuredError) WithContext(key string, value any) *StructuredError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[:n]
}

// WrapConfigurationError wraps an error raised while resolving configuration
func WrapConfigurationError(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeConfiguration, operation, message)
}

// WrapEnvironmentError wraps an error raised while loading the environment
func WrapEnvironmentError(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeEnvironment, operation, message)
}

// WrapValidationError wraps a validation failure
func WrapValidationError(err error, operation, message string) *StructuredError {
	return Wrap(err, ErrorTypeValidation, operation, message)
}

// IsType reports whether any error in err's chain is a StructuredError of the given type.
func IsType(err error, errType ErrorType) bool {
	for err != nil {
		if se, ok := err.(*StructuredError); ok && se.Type == errType {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
