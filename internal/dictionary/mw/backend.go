// Package mw adapts the Merriam-Webster dictionaryapi.com v3 APIs
// (Collegiate and Medical) to the dictionary.Backend interface.
package mw

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"resty.dev/v3"

	"github.com/ryanjosephkamp/openlist/internal/dictionary"
)

const (
	// CollegiateName identifies the Collegiate dictionary backend.
	CollegiateName = "merriam-webster"
	// MedicalName identifies the Medical dictionary backend, which covers
	// specialized terminology missing from Collegiate.
	MedicalName = "merriam-webster-medical"

	DefaultCollegiateBaseURL = "https://www.dictionaryapi.com/api/v3/references/collegiate/json"
	DefaultMedicalBaseURL    = "https://www.dictionaryapi.com/api/v3/references/medical/json"
)

// Config holds the connection settings shared by both MW backends.
type Config struct {
	BaseURL string
	APIKey  string
	// RequestDelay is the minimum gap between consecutive requests.
	RequestDelay time.Duration
	Timeout      time.Duration
	// Cache, when set, serves repeated lookups from disk instead of
	// spending another request against the daily quota.
	Cache *dictionary.FileCache
}

// Backend implements dictionary.Backend against one MW reference.
type Backend struct {
	name       string
	config     Config
	httpClient *resty.Client

	mu          sync.Mutex
	lastRequest time.Time
}

// NewCollegiate creates the Collegiate dictionary backend.
func NewCollegiate(config Config) *Backend {
	if config.BaseURL == "" {
		config.BaseURL = DefaultCollegiateBaseURL
	}
	return newBackend(CollegiateName, config)
}

// NewMedical creates the Medical dictionary backend.
func NewMedical(config Config) *Backend {
	if config.BaseURL == "" {
		config.BaseURL = DefaultMedicalBaseURL
	}
	return newBackend(MedicalName, config)
}

func newBackend(name string, config Config) *Backend {
	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}
	return &Backend{
		name:       name,
		config:     config,
		httpClient: client,
	}
}

// Name implements dictionary.Backend.
func (b *Backend) Name() string {
	return b.name
}

// Configured reports whether an API key is set.
func (b *Backend) Configured() bool {
	return b.config.APIKey != ""
}

// Close releases the underlying HTTP client.
func (b *Backend) Close() error {
	return b.httpClient.Close()
}

// Lookup implements dictionary.Backend.
func (b *Backend) Lookup(ctx context.Context, word string) (dictionary.LookupResult, error) {
	body, err := b.fetchBody(ctx, word)
	if err != nil {
		return dictionary.LookupResult{}, err
	}

	result, err := ParseResponse(word, body)
	if err != nil {
		return dictionary.LookupResult{}, fmt.Errorf("mw.ParseResponse > %w", err)
	}
	return result, nil
}

func (b *Backend) fetchBody(ctx context.Context, word string) ([]byte, error) {
	if b.config.Cache == nil {
		return b.request(ctx, word)
	}
	return b.config.Cache.Fetch(b.name, word, func() ([]byte, error) {
		return b.request(ctx, word)
	})
}

func (b *Backend) request(ctx context.Context, word string) ([]byte, error) {
	if err := b.throttle(ctx); err != nil {
		return nil, err
	}

	response, err := b.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", b.config.APIKey).
		Get("/" + word)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", response.StatusCode(), response.String())
	}
	return response.Bytes(), nil
}

// throttle enforces the minimum delay between requests to stay inside the
// API's rate limit.
func (b *Backend) throttle(ctx context.Context) error {
	if b.config.RequestDelay <= 0 {
		return nil
	}

	b.mu.Lock()
	wait := b.config.RequestDelay - time.Since(b.lastRequest)
	if wait < 0 {
		wait = 0
	}
	b.lastRequest = time.Now().Add(wait)
	b.mu.Unlock()

	if wait == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}
