// Package freedict adapts the Free Dictionary API (api.dictionaryapi.dev) to
// the dictionary.Backend interface. It needs no API key and has no request
// quota, but is less authoritative than Merriam-Webster, so it sits last in
// the fallback chain.
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/ryanjosephkamp/openlist/internal/dictionary"
)

// BackendName identifies the Free Dictionary backend.
const BackendName = "free-dictionary"

// DefaultBaseURL is the public Free Dictionary API endpoint.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Config holds the connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Backend implements dictionary.Backend against the Free Dictionary API.
type Backend struct {
	httpClient *resty.Client
}

// NewBackend creates the Free Dictionary backend.
func NewBackend(config Config) *Backend {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}
	return &Backend{httpClient: client}
}

// Name implements dictionary.Backend.
func (b *Backend) Name() string {
	return BackendName
}

// Configured always reports true: the API needs no credentials.
func (b *Backend) Configured() bool {
	return true
}

// Close releases the underlying HTTP client.
func (b *Backend) Close() error {
	return b.httpClient.Close()
}

// Entry is one entry of a Free Dictionary API response.
type Entry struct {
	Word     string    `json:"word"`
	Phonetic string    `json:"phonetic"`
	Origin   string    `json:"origin"`
	Meanings []Meaning `json:"meanings"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

type Definition struct {
	Definition string `json:"definition"`
}

// Lookup implements dictionary.Backend. The API answers 404 for unknown
// words, which is a definitive not-found, not an error.
func (b *Backend) Lookup(ctx context.Context, word string) (dictionary.LookupResult, error) {
	response, err := b.httpClient.R().
		SetContext(ctx).
		Get("/" + word)
	if err != nil {
		return dictionary.LookupResult{}, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.StatusCode() == http.StatusNotFound {
		return dictionary.LookupResult{Word: word}, nil
	}
	if response.StatusCode() != http.StatusOK {
		return dictionary.LookupResult{}, fmt.Errorf("status code: %d, body: %s", response.StatusCode(), response.String())
	}

	var entries []Entry
	if err := json.Unmarshal(response.Bytes(), &entries); err != nil {
		return dictionary.LookupResult{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return normalize(word, entries), nil
}

func normalize(word string, entries []Entry) dictionary.LookupResult {
	if len(entries) == 0 {
		return dictionary.LookupResult{Word: word}
	}

	entry := entries[0]
	if entry.Word != "" && !strings.EqualFold(entry.Word, word) {
		// Fuzzy search returned a different headword.
		return dictionary.LookupResult{
			Word:     word,
			Found:    true,
			Headword: entry.Word,
		}
	}

	result := dictionary.LookupResult{
		Word:          word,
		Found:         true,
		Headword:      entry.Word,
		IsExactMatch:  true,
		Pronunciation: entry.Phonetic,
		Etymology:     entry.Origin,
	}
	if len(entry.Meanings) > 0 {
		meaning := entry.Meanings[0]
		result.PartOfSpeech = meaning.PartOfSpeech
		if len(meaning.Definitions) > 0 {
			result.Definition = meaning.Definitions[0].Definition
		}
	}
	return result
}
