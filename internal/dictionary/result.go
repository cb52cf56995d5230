// Package dictionary looks up words against a prioritized chain of
// authoritative dictionary backends and verifies that returned entries are
// exact matches for the queried word.
package dictionary

// LookupResult is the normalized, backend-agnostic outcome of a lookup.
// Every backend adapter translates its raw response into this shape before
// any downstream logic sees it.
type LookupResult struct {
	// Word is the queried word, always lowercase.
	Word string
	// Found reports whether the backend returned a dictionary entry at all.
	// A returned entry is not necessarily an entry for the queried word;
	// see IsExactMatch.
	Found bool
	// Headword is the canonical headword of the returned entry, as the
	// backend printed it (syllable markers stripped, capitalization kept).
	Headword string
	// IsExactMatch reports whether the returned entry's headword or stems
	// match the queried word. Backends with fuzzy search return related
	// entries for unknown words; those must not count as found.
	IsExactMatch bool
	// IsProperNoun reports whether the entry is a proper noun: capitalized
	// headword for a lowercase query, or a biographical/geographical entry.
	IsProperNoun bool
	// IsAbbreviation reports whether the entry is an abbreviation or
	// acronym.
	IsAbbreviation bool
	// HasCommonUse reports whether a proper-noun word also has an entry in
	// common use, like a trademark used generically as a verb.
	HasCommonUse bool

	PartOfSpeech  string
	Definition    string
	Pronunciation string
	Etymology     string

	// SourceBackend identifies which backend supplied the evidence.
	SourceBackend string

	// Inconclusive marks a lookup where no backend could definitively
	// confirm or deny the word within budget and availability constraints.
	// Distinct from not-found: inconclusive results are never committed as
	// rejections.
	Inconclusive bool
}

// Outcome is the verified interpretation of a LookupResult.
type Outcome string

const (
	OutcomeAccept             Outcome = "accept"
	OutcomeRejectNotFound     Outcome = "reject_not_found"
	OutcomeRejectProperNoun   Outcome = "reject_proper_noun"
	OutcomeRejectAbbreviation Outcome = "reject_abbreviation"
	OutcomeRejectMismatch     Outcome = "reject_mismatch"
	OutcomeInconclusive       Outcome = "inconclusive"
)

// IsRejection reports whether the outcome is a definitive rejection that may
// be recorded against the word for this run.
func (o Outcome) IsRejection() bool {
	switch o {
	case OutcomeRejectNotFound, OutcomeRejectProperNoun, OutcomeRejectAbbreviation, OutcomeRejectMismatch:
		return true
	}
	return false
}
