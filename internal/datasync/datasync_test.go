package datasync

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanjosephkamp/openlist/internal/sweep"
	"github.com/ryanjosephkamp/openlist/internal/wordlist"
)

func TestChangeLogSink_Write(t *testing.T) {
	outputDir := t.TempDir()
	releaseDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	changes := []wordlist.ChangeRecord{
		{
			Word:       "google",
			Transition: wordlist.TransitionPromoted,
			Source:     "merriam-webster",
			Timestamp:  releaseDate,
		},
		{
			Word:       "petrichor",
			Transition: wordlist.TransitionAdded,
			Source:     "free-dictionary",
			Timestamp:  releaseDate,
		},
	}

	sink := NewChangeLogSink(outputDir)
	path, err := sink.Write(releaseDate, changes)
	require.NoError(t, err)
	assert.Contains(t, path, "changelog_2026-08-31.yaml")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `- word: google
  transition: invalid_to_valid
  source: merriam-webster
  timestamp: 2026-08-31T00:00:00Z
- word: petrichor
  transition: new_to_valid
  source: free-dictionary
  timestamp: 2026-08-31T00:00:00Z
`, string(contents))
}

func TestStatsSink_Write(t *testing.T) {
	outputDir := t.TempDir()
	releaseDate := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	result := sweep.RunResult{
		Validated:    10,
		Promoted:     2,
		StillInvalid: 7,
		Inconclusive: 1,
		Remaining:    90,
		Duration:     95 * time.Second,
	}

	sink := NewStatsSink(outputDir)
	path, err := sink.Write(releaseDate, result, 1200, 100)
	require.NoError(t, err)
	assert.Contains(t, path, "stats_2026-08-31.yaml")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `release_date: "2026-08-31"
valid_words: 1200
invalid_words: 100
validated: 10
promoted: 2
still_invalid: 7
inconclusive: 1
remaining: 90
duration_seconds: 95
`, string(contents))
}
