package utils

import "unicode"

// IsValidPhrase reports whether a phrase contains only letters and
// whitespace, i.e. whether the engine can parse it at all. The CLI uses this
// to warn interactively instead of showing an empty result with no hint.
func IsValidPhrase(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
		case unicode.IsLetter(r) && r < 128:
			hasLetter = true
		default:
			return false
		}
	}
	return hasLetter
}
