package domain

import "unicode"

const (
	minPasswordLen = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLen = 72
)

// ValidatePassword enforces the password complexity policy shared by every
// account type.
func ValidatePassword(pw string) error {
	if len(pw) < minPasswordLen {
		return NewValidationError("password", "must be at least 8 characters long")
	}
	if len(pw) > maxPasswordLen {
		return NewValidationError("password", "must be at most 72 bytes long")
	}

	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return NewValidationError("password", "must contain an upper-case letter, a lower-case letter and a digit")
	}
	return nil
}
