package identity

import "unicode"

// ValidateNewPassword checks the password policy for password changes:
// length >= 8, at least one digit, at least one upper-case letter.
// Returns ErrWeakPassword when the candidate fails any rule.
func ValidateNewPassword(candidate string) error {
	if len(candidate) < 8 {
		return ErrWeakPassword
	}

	var hasDigit, hasUpper bool
	for _, r := range candidate {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	if !hasDigit || !hasUpper {
		return ErrWeakPassword
	}
	return nil
}
