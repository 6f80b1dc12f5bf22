package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	domainErrors "github.com/kiralago/storefront/internal/domain/errors"
	"github.com/kiralago/storefront/internal/domain/model"
)

// ValidatePasswordChange enforces the password change policy. Rules run in
// order and the first failure wins: all fields present, minimum length,
// character classes, confirmation match.
func ValidatePasswordChange(current, newPassword, confirm string) error {
	if current == "" || newPassword == "" || confirm == "" {
		return domainErrors.NewPolicyError("all fields are required")
	}
	if utf8.RuneCountInString(newPassword) < 8 {
		return domainErrors.NewPolicyError("new password must be at least 8 characters long")
	}
	var hasDigit, hasUpper, hasLower bool
	for _, r := range newPassword {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasDigit || !hasUpper || !hasLower {
		return domainErrors.NewPolicyError("new password must contain a digit, an uppercase and a lowercase letter")
	}
	if newPassword != confirm {
		return domainErrors.ErrPasswordMismatch
	}
	return nil
}

// ValidatePayment requires every field to be non-blank after trimming.
func ValidatePayment(p model.Payment) error {
	if strings.TrimSpace(p.CardNumber) == "" ||
		strings.TrimSpace(p.Expiry) == "" ||
		strings.TrimSpace(p.CVV) == "" {
		return domainErrors.ErrIncompletePayment
	}
	return nil
}
