// Package discovery finds candidate new words from external sources: the
// Merriam-Webster word-of-the-day feed, their new-words articles and the
// Wordnik word of the day. Discovered words are candidates only; they go
// through the same lookup and verification as any other word before they can
// enter the valid list.
package discovery

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

//go:generate mockgen -source=source.go -destination=../mocks/discovery/mock_source.go -package=mock_discovery

// Source produces candidate words. Sources may return duplicates, mixed case
// and junk; the Discoverer cleans up after them.
type Source interface {
	Name() string
	Words(ctx context.Context) ([]string, error)
}

// FileSource reads candidate words from a newline-separated file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name implements Source.
func (s *FileSource) Name() string {
	return "file:" + s.path
}

// Words implements Source.
func (s *FileSource) Words(_ context.Context) ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var result []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		result = append(result, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err > %w", err)
	}
	return result, nil
}

// isSingleAlphabeticWord reports whether a candidate is one plain alphabetic
// word, the only shape the word lists accept.
func isSingleAlphabeticWord(word string) bool {
	if len(word) < 2 {
		return false
	}
	for _, r := range word {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
