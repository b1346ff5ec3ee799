package style

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateProperty = errors.New("duplicate property")
	ErrExpectedString    = errors.New("expected string")
	ErrExpectedNumber    = errors.New("expected number")
	ErrInvalidBackground = errors.New("invalid background")
)

// SyntaxError reports style document which is not a well formed JSON object.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed style document: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// PropertyError reports property whose value cannot be coerced to its type.
type PropertyError struct {
	Property string // Property name as it appeared in the document
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %q: %v", e.Property, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}
