package mw

import (
	"encoding/json"
	"strings"

	"github.com/ryanjosephkamp/openlist/internal/dictionary"
)

// Entry is one entry of a dictionaryapi.com v3 response. The API returns an
// array of entries for known words and an array of plain-string spelling
// suggestions for unknown ones.
type Entry struct {
	Meta     Meta                `json:"meta"`
	Hwi      Hwi                 `json:"hwi"`
	Fl       string              `json:"fl"`
	Shortdef []string            `json:"shortdef"`
	Et       [][]json.RawMessage `json:"et"`
}

type Meta struct {
	// ID is the canonical headword, suffixed with ":n" for homographs
	// ("mind:1").
	ID      string   `json:"id"`
	Section string   `json:"section"`
	Stems   []string `json:"stems"`
}

type Hwi struct {
	// Hw is the headword with "*" syllable markers ("ex*am*ple").
	Hw  string          `json:"hw"`
	Prs []Pronunciation `json:"prs"`
}

type Pronunciation struct {
	Mw string `json:"mw"`
}

// headword returns the entry's headword without syllable markers, preferring
// hwi.hw since it keeps the original capitalization.
func (e Entry) headword() string {
	if hw := strings.ReplaceAll(e.Hwi.Hw, "*", ""); hw != "" {
		return hw
	}
	id := e.Meta.ID
	if i := strings.IndexByte(id, ':'); i >= 0 {
		id = id[:i]
	}
	return id
}

// matches verifies the entry is actually for the queried word. The API's
// fuzzy search returns related entries (querying "noher" yields "mind"
// because "came into her mind" is among its stems); only exact matches on
// the id, headword or stems list count.
func (e Entry) matches(word string) bool {
	word = strings.ToLower(word)

	id := e.Meta.ID
	if i := strings.IndexByte(id, ':'); i >= 0 {
		id = id[:i]
	}
	if strings.ToLower(id) == word {
		return true
	}
	if strings.ToLower(e.headword()) == word {
		return true
	}
	for _, stem := range e.Meta.Stems {
		if strings.ToLower(stem) == word {
			return true
		}
	}
	return false
}

// isAbbreviation detects abbreviation and acronym entries: the functional
// label says so, or the headword is all uppercase ("NASA").
func (e Entry) isAbbreviation() bool {
	if strings.Contains(strings.ToLower(e.Fl), "abbreviation") {
		return true
	}
	hw := e.headword()
	return len(hw) > 1 && hw == strings.ToUpper(hw) && hw != strings.ToLower(hw)
}

// isProperNoun detects proper-noun entries: capitalized headword (but not
// all-caps, which is an acronym) or a biographical/geographical section.
func (e Entry) isProperNoun() bool {
	hw := e.headword()
	if hw != "" && hw != strings.ToUpper(hw) {
		first := hw[:1]
		if first == strings.ToUpper(first) && first != strings.ToLower(first) {
			return true
		}
	}
	return e.Meta.Section == "biog" || e.Meta.Section == "geog"
}

func (e Entry) definition() string {
	if len(e.Shortdef) > 0 {
		return e.Shortdef[0]
	}
	return ""
}

func (e Entry) pronunciation() string {
	if len(e.Hwi.Prs) > 0 {
		return e.Hwi.Prs[0].Mw
	}
	return ""
}

func (e Entry) etymology() string {
	for _, item := range e.Et {
		if len(item) < 2 {
			continue
		}
		var kind, text string
		if err := json.Unmarshal(item[0], &kind); err != nil || kind != "text" {
			continue
		}
		if err := json.Unmarshal(item[1], &text); err != nil {
			continue
		}
		return text
	}
	return ""
}

// ParseResponse normalizes a raw dictionaryapi.com response body for the
// queried word.
func ParseResponse(word string, body []byte) (dictionary.LookupResult, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return dictionary.LookupResult{}, err
	}
	if len(elements) == 0 {
		return dictionary.LookupResult{Word: word}, nil
	}

	// A list of strings is the API's spelling suggestions: the word itself
	// has no entry.
	var suggestion string
	if err := json.Unmarshal(elements[0], &suggestion); err == nil {
		return dictionary.LookupResult{Word: word}, nil
	}

	entries := make([]Entry, 0, len(elements))
	for _, element := range elements {
		var entry Entry
		if err := json.Unmarshal(element, &entry); err != nil {
			return dictionary.LookupResult{}, err
		}
		entries = append(entries, entry)
	}

	matching := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.matches(word) {
			matching = append(matching, entry)
		}
	}

	// Entries came back, but none for the queried word. Surface the stray
	// headword so the verifier records a mismatch rather than a promotion.
	if len(matching) == 0 {
		return dictionary.LookupResult{
			Word:     word,
			Found:    true,
			Headword: entries[0].headword(),
		}, nil
	}

	// Prefer an entry in common use over proper-noun and abbreviation
	// homographs: "google" is both a trademark and a verb, and the verb
	// entry is what validates the word.
	chosen := matching[0]
	var hasCommonUse bool
	for _, entry := range matching {
		if !entry.isProperNoun() && !entry.isAbbreviation() {
			chosen = entry
			hasCommonUse = len(matching) > 1
			break
		}
	}

	return dictionary.LookupResult{
		Word:           word,
		Found:          true,
		Headword:       chosen.headword(),
		IsExactMatch:   true,
		IsProperNoun:   chosen.isProperNoun(),
		IsAbbreviation: chosen.isAbbreviation(),
		HasCommonUse:   hasCommonUse,
		PartOfSpeech:   chosen.Fl,
		Definition:     chosen.definition(),
		Pronunciation:  chosen.pronunciation(),
		Etymology:      chosen.etymology(),
	}, nil
}
