package discovery

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

// DefaultNewWordsURL is Merriam-Webster's article announcing newly added
// dictionary entries, the best source for genuinely new words.
const DefaultNewWordsURL = "https://www.merriam-webster.com/wordplay/new-words-in-the-dictionary"

// NewWordsPage scrapes a new-words article. New words appear as links into
// /dictionary/ and as emphasized text.
type NewWordsPage struct {
	url        string
	httpClient *resty.Client
}

// NewNewWordsPage creates a NewWordsPage source. An empty url falls back to
// the Merriam-Webster article.
func NewNewWordsPage(url string, timeout time.Duration) *NewWordsPage {
	if url == "" {
		url = DefaultNewWordsURL
	}
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &NewWordsPage{url: url, httpClient: client}
}

// Name implements Source.
func (s *NewWordsPage) Name() string {
	return "merriam-webster-new-words"
}

// Words implements Source.
func (s *NewWordsPage) Words(ctx context.Context) ([]string, error) {
	response, err := s.httpClient.R().
		SetContext(ctx).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; openlist/1.0)").
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", response.StatusCode(), string(response.Body()))
	}

	document, err := html.Parse(bytes.NewReader(response.Body()))
	if err != nil {
		return nil, fmt.Errorf("html.Parse > %w", err)
	}

	found := make(map[string]bool)
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch node.Data {
			case "a":
				if word, ok := dictionaryLinkWord(node); ok {
					found[word] = true
				}
			case "em", "i":
				text := strings.ToLower(strings.TrimSpace(nodeText(node)))
				if len(text) < 25 && isSingleAlphabeticWord(text) {
					found[text] = true
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(document)

	result := make([]string, 0, len(found))
	for word := range found {
		result = append(result, word)
	}
	sort.Strings(result)
	return result, nil
}

// dictionaryLinkWord extracts the headword from an <a href="/dictionary/..">
// link, dropping query strings and fragments.
func dictionaryLinkWord(node *html.Node) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Key != "href" || !strings.Contains(attr.Val, "/dictionary/") {
			continue
		}
		word := attr.Val[strings.Index(attr.Val, "/dictionary/")+len("/dictionary/"):]
		if i := strings.IndexAny(word, "?#"); i >= 0 {
			word = word[:i]
		}
		word = strings.ToLower(strings.ReplaceAll(word, "%20", " "))
		if isSingleAlphabeticWord(word) {
			return word, true
		}
	}
	return "", false
}

func nodeText(node *html.Node) string {
	var builder strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return builder.String()
}
