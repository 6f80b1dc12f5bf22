package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is wrong")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
	ErrNoFile             = errors.New("no file selected")
	ErrFileTooLarge       = errors.New("file exceeds maximum size")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrCartLineNotFound   = errors.New("cart item not found")
	ErrIncompletePayment  = errors.New("payment details are incomplete")
	ErrSessionNotFound    = errors.New("session not found")
)

// PolicyError reports a password policy violation with the failed rule.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string {
	return "password policy violation: " + e.Reason
}

// NewPolicyError wraps a human readable rule description.
func NewPolicyError(reason string) error {
	return &PolicyError{Reason: reason}
}

// IsPolicyError reports whether err is a password policy violation.
func IsPolicyError(err error) bool {
	var pe *PolicyError
	return errors.As(err, &pe)
}
