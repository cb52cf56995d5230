// Package datasync exports run results as YAML files for the external
// changelog and statistics generators.
package datasync

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ryanjosephkamp/openlist/internal/sweep"
	"github.com/ryanjosephkamp/openlist/internal/wordlist"
)

// ChangeLogSink writes the set changes of a run to a per-release YAML file.
type ChangeLogSink struct {
	outputDir string
}

// NewChangeLogSink creates a new ChangeLogSink.
func NewChangeLogSink(outputDir string) *ChangeLogSink {
	return &ChangeLogSink{outputDir: outputDir}
}

// Write writes changes to changelog_<date>.yaml and returns the file path.
func (s *ChangeLogSink) Write(releaseDate time.Time, changes []wordlist.ChangeRecord) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.outputDir, fmt.Sprintf("changelog_%s.yaml", releaseDate.Format("2006-01-02")))
	if err := writeYAML(path, changes); err != nil {
		return "", fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return path, nil
}

// Stats is the per-release statistics record.
type Stats struct {
	ReleaseDate  string `yaml:"release_date"`
	ValidWords   int    `yaml:"valid_words"`
	InvalidWords int    `yaml:"invalid_words"`
	Validated    int    `yaml:"validated"`
	Promoted     int    `yaml:"promoted"`
	StillInvalid int    `yaml:"still_invalid"`
	Inconclusive int    `yaml:"inconclusive"`
	Remaining    int    `yaml:"remaining"`
	DurationSecs int    `yaml:"duration_seconds"`
}

// StatsSink writes run statistics to a per-release YAML file.
type StatsSink struct {
	outputDir string
}

// NewStatsSink creates a new StatsSink.
func NewStatsSink(outputDir string) *StatsSink {
	return &StatsSink{outputDir: outputDir}
}

// Write writes the run summary to stats_<date>.yaml and returns the file
// path.
func (s *StatsSink) Write(releaseDate time.Time, result sweep.RunResult, validCount, invalidCount int) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	stats := Stats{
		ReleaseDate:  releaseDate.Format("2006-01-02"),
		ValidWords:   validCount,
		InvalidWords: invalidCount,
		Validated:    result.Validated,
		Promoted:     result.Promoted,
		StillInvalid: result.StillInvalid,
		Inconclusive: result.Inconclusive,
		Remaining:    result.Remaining,
		DurationSecs: int(result.Duration.Seconds()),
	}
	path := filepath.Join(s.outputDir, fmt.Sprintf("stats_%s.yaml", stats.ReleaseDate))
	if err := writeYAML(path, stats); err != nil {
		return "", fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return path, nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
