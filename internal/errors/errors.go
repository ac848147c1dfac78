// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"
)

// ErrNotFound is a sentinel error for an identifier that does not
// resolve to a stored record.
type ErrNotFound struct {
    Resource string
    ID       int
}

func (e *ErrNotFound) Error() string {
    return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// Helper constructors
func NewMenuItemNotFound(id int) error {
    return &ErrNotFound{Resource: "menu item", ID: id}
}

func NewEventNotFound(id int) error {
    return &ErrNotFound{Resource: "event", ID: id}
}

func NewCateringRequestNotFound(id int) error {
    return &ErrNotFound{Resource: "catering request", ID: id}
}

// IsNotFound reports whether err is (or wraps) an ErrNotFound.
func IsNotFound(err error) bool {
    var nf *ErrNotFound
    return errors.As(err, &nf)
}
