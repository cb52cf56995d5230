// Package words provides structural validation for word list candidates.
package words

import "strings"

const (
	// MinLength is the shortest word the lists accept.
	MinLength = 2
	// MaxLength matches the longest word found in English dictionaries.
	MaxLength = 45
)

// CheckResult is the outcome of a structural validation check.
type CheckResult struct {
	Word    string
	IsValid bool
	Reason  string
}

// IsStructurallyValid reports whether a word satisfies the list charset and
// length rules: 2 to 45 characters, lowercase a-z only. It never errors;
// anything outside the rules is simply not valid.
func IsStructurallyValid(word string) bool {
	return Check(word).IsValid
}

// Check validates a word and returns the first failing rule as a reason.
func Check(word string) CheckResult {
	if word == "" {
		return CheckResult{Word: word, Reason: "empty word"}
	}
	if len(word) < MinLength {
		return CheckResult{Word: word, Reason: "too short (min 2 characters)"}
	}
	if len(word) > MaxLength {
		return CheckResult{Word: word, Reason: "too long (max 45 characters)"}
	}
	for _, c := range word {
		if c < 'a' || c > 'z' {
			if c >= 'A' && c <= 'Z' {
				return CheckResult{Word: word, Reason: "contains uppercase letters (potential proper noun)"}
			}
			return CheckResult{Word: word, Reason: "contains non-alphabetic characters"}
		}
	}
	return CheckResult{Word: word, IsValid: true}
}

// Normalize trims surrounding whitespace and lowercases a candidate before
// validation. Discovery sources produce mixed-case words; the lists are keyed
// by the lowercase form.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
