package dictionary

import (
	"strings"
	"unicode"
)

// Verifier decides whether a normalized lookup result is authoritative
// evidence for the queried word. Backends with fuzzy search can return an
// entry for a different headword than the one queried; the verifier is the
// safeguard against promoting a word on such evidence.
type Verifier struct{}

// NewVerifier creates a Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify interprets a lookup result for the given word.
//
// The headword of the returned entry must equal the queried word exactly
// after stripping syllable markers; anything else is a mismatch regardless of
// whether the backend marked the entry as found. Proper nouns are rejected
// unless the entry shows the word is also in common use, like a trademark
// used generically as a verb.
func (v *Verifier) Verify(word string, result LookupResult) Outcome {
	if result.Inconclusive {
		return OutcomeInconclusive
	}
	if !result.Found {
		return OutcomeRejectNotFound
	}
	if !result.IsExactMatch {
		return OutcomeRejectMismatch
	}
	if result.Headword != "" && !headwordMatches(result.Headword, word) {
		return OutcomeRejectMismatch
	}
	if result.IsAbbreviation {
		return OutcomeRejectAbbreviation
	}
	if v.isProperNoun(word, result) && !result.HasCommonUse {
		return OutcomeRejectProperNoun
	}
	return OutcomeAccept
}

func (v *Verifier) isProperNoun(word string, result LookupResult) bool {
	if result.IsProperNoun {
		return true
	}
	// A capitalized headword for a lowercase query marks a proper noun even
	// when the backend did not classify it.
	headword := cleanHeadword(result.Headword)
	if headword != "" && word == strings.ToLower(word) {
		first := []rune(headword)[0]
		if unicode.IsUpper(first) {
			return true
		}
	}
	return false
}

// headwordMatches compares a returned headword against the queried word,
// ignoring syllable markers and capitalization. Capitalization differences
// are a proper-noun question, not a mismatch.
func headwordMatches(headword, word string) bool {
	return strings.EqualFold(cleanHeadword(headword), word)
}

// cleanHeadword strips the syllable markers some backends embed in headwords
// ("ex*am*ple").
func cleanHeadword(headword string) string {
	return strings.ReplaceAll(headword, "*", "")
}
