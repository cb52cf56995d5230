package discovery

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultRSSFeedURL is Merriam-Webster's word-of-the-day RSS feed.
const DefaultRSSFeedURL = "https://www.merriam-webster.com/wotd/feed/rss2"

// RSSFeed discovers words from an RSS word-of-the-day feed. Item titles come
// in two shapes: "Word of the Day: oaf" and the bare word "oaf".
type RSSFeed struct {
	url        string
	httpClient *resty.Client
}

// NewRSSFeed creates an RSSFeed source. An empty url falls back to the
// Merriam-Webster feed.
func NewRSSFeed(url string, timeout time.Duration) *RSSFeed {
	if url == "" {
		url = DefaultRSSFeedURL
	}
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &RSSFeed{url: url, httpClient: client}
}

// Name implements Source.
func (s *RSSFeed) Name() string {
	return "merriam-webster-rss"
}

type rssDocument struct {
	Channel struct {
		Items []struct {
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}

// Words implements Source.
func (s *RSSFeed) Words(ctx context.Context) ([]string, error) {
	response, err := s.httpClient.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", response.StatusCode(), string(response.Body()))
	}

	var document rssDocument
	if err := xml.Unmarshal(response.Body(), &document); err != nil {
		return nil, fmt.Errorf("xml.Unmarshal > %w", err)
	}

	var result []string
	for _, item := range document.Channel.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		word := title
		if i := strings.LastIndexByte(title, ':'); i >= 0 {
			word = strings.TrimSpace(title[i+1:])
		}
		word = strings.ToLower(word)
		if isSingleAlphabeticWord(word) {
			result = append(result, word)
		}
	}
	return result, nil
}
