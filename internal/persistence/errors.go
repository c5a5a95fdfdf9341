package persistence

import (
	"fmt"

	"github.com/thenoetrevino/folio/internal/database"
)

// ErrSlotEmpty indicates nothing has been stored in the slot yet
var ErrSlotEmpty = database.ErrSlotNotFound

// ParseError reports stored bytes that do not decode as a portfolio.
// Load logs it and falls back to the default document; it never reaches callers.
type ParseError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("stored document %q is unreadable: %v", e.Key, e.Err)
}

// Unwrap returns the underlying decode error
func (e *ParseError) Unwrap() error {
	return e.Err
}
