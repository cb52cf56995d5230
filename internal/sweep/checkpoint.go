// Package sweep runs the incremental validation loop over the invalid word
// list, checkpointing progress after every word so an interrupted run can
// resume without re-spending dictionary budget.
package sweep

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

//go:generate mockgen -source=checkpoint.go -destination=../mocks/sweep/mock_checkpoint.go -package=mock_sweep

// Progress is the durable state of the current evaluation cycle. A word in
// ValidatedWords has a definitive verdict this cycle and is skipped until the
// checkpoint is reset, whatever the verdict was.
type Progress struct {
	ValidatedCount int       `json:"validated_count"`
	PromotedCount  int       `json:"promoted_count"`
	Cursor         int       `json:"cursor"`
	LastRun        time.Time `json:"last_run"`
	// ValidatedWords maps each word with a definitive verdict this cycle to
	// its outcome.
	ValidatedWords map[string]string `json:"validated_words"`
}

// NewProgress creates an empty Progress.
func NewProgress() Progress {
	return Progress{ValidatedWords: make(map[string]string)}
}

// Validated reports whether a word already has a verdict this cycle.
func (p Progress) Validated(word string) bool {
	_, ok := p.ValidatedWords[word]
	return ok
}

// Checkpoint persists Progress across runs.
type Checkpoint interface {
	Load(ctx context.Context) (Progress, error)
	Save(ctx context.Context, progress Progress) error
	// Reset discards all progress and starts a new evaluation cycle.
	Reset(ctx context.Context) error
}

// FileCheckpoint stores Progress as a JSON file.
type FileCheckpoint struct {
	path string
}

// NewFileCheckpoint creates a FileCheckpoint at the given path.
func NewFileCheckpoint(path string) *FileCheckpoint {
	return &FileCheckpoint{path: path}
}

// Load implements Checkpoint. A missing file is an empty Progress.
func (c *FileCheckpoint) Load(_ context.Context) (Progress, error) {
	contents, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewProgress(), nil
		}
		return Progress{}, fmt.Errorf("os.ReadFile > %w", err)
	}

	var progress Progress
	if err := json.Unmarshal(contents, &progress); err != nil {
		return Progress{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if progress.ValidatedWords == nil {
		progress.ValidatedWords = make(map[string]string)
	}
	return progress, nil
}

// Save implements Checkpoint. The write goes through a temp file and rename
// so a crash mid-save never corrupts the previous checkpoint.
func (c *FileCheckpoint) Save(_ context.Context, progress Progress) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	contents, err := json.MarshalIndent(progress, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(contents); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("tmp.Write > %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("tmp.Sync > %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close > %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}

// Reset implements Checkpoint.
func (c *FileCheckpoint) Reset(_ context.Context) error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove > %w", err)
	}
	return nil
}
