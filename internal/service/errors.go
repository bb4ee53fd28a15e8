package service

import "errors"

// ErrCategoryInUse is returned when a category deletion is refused because
// articles still reference it. The repository delete is never attempted.
var ErrCategoryInUse = errors.New("category is referenced by articles")

// ValidationError marks input the user can fix. Handlers surface these as
// 400s with the message intact; nothing has been written when one occurs.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// NewValidationError creates a ValidationError with a user-facing message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
