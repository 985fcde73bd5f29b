package printer

import (
	"errors"
	"fmt"
)

// Validation errors returned by Print before any page is started.
var (
	ErrNoDocument = errors.New("printer: no document to print")
	ErrNoTarget   = errors.New("printer: no target to print on")
	ErrNoBody     = errors.New("printer: header and footer leave no room for the body")
)

// PageError reports a paint failure on a specific page. Pages before Page
// have already been emitted to the target.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("printer: page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}
