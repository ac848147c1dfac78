// internal/service/validation.go
package service

// FieldError is one violated field, reported with the message the
// catering form shows next to that input.
type FieldError struct {
    Field   string `json:"field"`
    Message string `json:"message"`
}

// ValidationError carries every violation found in a submission. The
// whole operation fails; nothing is persisted.
type ValidationError struct {
    Fields []FieldError
}

func (e *ValidationError) Error() string {
    return "validation failed"
}
