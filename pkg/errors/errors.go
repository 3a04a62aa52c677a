package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeStore represents graph store mutation errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeQuery represents query/lookup errors
	ErrorTypeQuery ErrorType = "query"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Store Errors

// DuplicateIDError is returned when creating a node whose id already exists
// within its kind-space
type DuplicateIDError struct {
	*BaseError
	Kind string
	ID   string
}

func NewDuplicateID(kind, id string) *DuplicateIDError {
	return &DuplicateIDError{
		BaseError: NewBaseError(ErrorTypeStore, fmt.Sprintf("%s already exists: %s", kind, id), nil),
		Kind:      kind,
		ID:        id,
	}
}

// DanglingReferenceError is returned when creating an edge whose endpoint
// does not exist in the store
type DanglingReferenceError struct {
	*BaseError
	EdgeType string
	NodeID   string
}

func NewDanglingReference(edgeType, nodeID string) *DanglingReferenceError {
	return &DanglingReferenceError{
		BaseError: NewBaseError(ErrorTypeStore, fmt.Sprintf("%s edge references missing node: %s", edgeType, nodeID), nil),
		EdgeType:  edgeType,
		NodeID:    nodeID,
	}
}

// InvalidArgumentError is returned for structurally malformed input, such as
// an empty node id or an unknown edge type
type InvalidArgumentError struct {
	*BaseError
	Reason string
}

func NewInvalidArgument(reason string) *InvalidArgumentError {
	return &InvalidArgumentError{
		BaseError: NewBaseError(ErrorTypeStore, reason, nil),
		Reason:    reason,
	}
}

// Query Errors

// NotFoundError is returned when a named lookup matches zero entities and
// the operation treats absence as an error rather than an empty result
type NotFoundError struct {
	*BaseError
	Kind string
	Key  string
}

func NewNotFound(kind, key string) *NotFoundError {
	return &NotFoundError{
		BaseError: NewBaseError(ErrorTypeQuery, fmt.Sprintf("%s not found: %s", kind, key), nil),
		Kind:      kind,
		Key:       key,
	}
}
