package utils

import "unicode"

// IsRackChar checks if a rune may appear in rack input
func IsRackChar(r rune) bool {
	return r == '*' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsOnlyWildcards checks if a string consists entirely of '*' markers
func IsOnlyWildcards(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r != '*' {
			return false
		}
	}
	return true
}

// IsValidRack checks if input should be processed for solving.
// Returns false for empty strings and strings with anything outside
// ASCII letters and '*'.
func IsValidRack(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !IsRackChar(r) {
			return false
		}
	}
	return true
}
