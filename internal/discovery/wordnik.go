package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultWordnikBaseURL is Wordnik's word-of-the-day endpoint.
const DefaultWordnikBaseURL = "https://api.wordnik.com/v4/words.json/wordOfTheDay"

// WordnikConfig configures the Wordnik word-of-the-day source.
type WordnikConfig struct {
	BaseURL string
	APIKey  string
	// LookbackDays is how many past days of word-of-the-day to fetch,
	// capped at 30 to stay inside the basic plan's daily call budget.
	LookbackDays int
	// RequestDelay is the gap between consecutive calls.
	RequestDelay time.Duration
	// DailyLimit caps the number of requests made per run. Zero means no cap
	// beyond LookbackDays.
	DailyLimit int64
	Timeout    time.Duration
}

// Wordnik discovers words from Wordnik's word of the day, looking back over
// the past days. Without an API key the source yields nothing.
type Wordnik struct {
	config     WordnikConfig
	httpClient *resty.Client
	now        func() time.Time
}

// NewWordnik creates a Wordnik source.
func NewWordnik(config WordnikConfig) *Wordnik {
	if config.BaseURL == "" {
		config.BaseURL = DefaultWordnikBaseURL
	}
	if config.LookbackDays <= 0 || config.LookbackDays > 30 {
		config.LookbackDays = 30
	}
	client := resty.New()
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}
	return &Wordnik{
		config:     config,
		httpClient: client,
		now:        time.Now,
	}
}

// Name implements Source.
func (s *Wordnik) Name() string {
	return "wordnik"
}

// Words implements Source. Failures for individual days are tolerated; a 429
// stops the lookback since every further call would be rejected too.
func (s *Wordnik) Words(ctx context.Context) ([]string, error) {
	if s.config.APIKey == "" {
		slog.Default().Debug("no wordnik api key configured, skipping source")
		return nil, nil
	}

	seen := make(map[string]bool)
	var result []string
	for daysAgo := 0; daysAgo < s.config.LookbackDays; daysAgo++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if s.config.DailyLimit > 0 && int64(daysAgo) >= s.config.DailyLimit {
			break
		}
		date := s.now().AddDate(0, 0, -daysAgo).Format("2006-01-02")

		response, err := s.httpClient.R().
			SetContext(ctx).
			SetQueryParam("api_key", s.config.APIKey).
			SetQueryParam("date", date).
			Get(s.config.BaseURL)
		if err != nil {
			slog.Default().Debug("wordnik word-of-the-day fetch failed",
				"date", date,
				"error", err)
			continue
		}
		if response.StatusCode() == http.StatusTooManyRequests {
			slog.Default().Warn("wordnik rate limit reached, stopping lookback",
				"date", date)
			break
		}
		if response.StatusCode() != http.StatusOK {
			continue
		}

		var payload struct {
			Word string `json:"word"`
		}
		if err := json.Unmarshal(response.Body(), &payload); err != nil {
			return nil, fmt.Errorf("json.Unmarshal > %w", err)
		}
		word := payload.Word
		if !isSingleAlphabeticWord(word) || seen[word] {
			continue
		}
		seen[word] = true
		result = append(result, word)

		if s.config.RequestDelay > 0 && daysAgo < s.config.LookbackDays-1 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(s.config.RequestDelay):
			}
		}
	}
	return result, nil
}
