package wordlist

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// File names inside the store directory. The plain-text lists are the
// published artifacts; the JSON maps carry per-word metadata.
const (
	validWordsFile   = "valid_words.txt"
	validDictFile    = "valid_dict.json"
	invalidWordsFile = "invalid_words.txt"
	invalidDictFile  = "invalid_dict.json"
)

// FileStore keeps both sets in memory and persists them as sorted word lists
// plus JSON metadata maps. Every file write goes through a temp file and
// rename, so readers never observe a partially written list.
type FileStore struct {
	directory string

	valid   map[string]Entry
	invalid map[string]Entry
	loaded  bool
}

// NewFileStore creates a FileStore rooted at the given directory.
func NewFileStore(directory string) *FileStore {
	return &FileStore{
		directory: directory,
		valid:     make(map[string]Entry),
		invalid:   make(map[string]Entry),
	}
}

// Load implements Store. Missing files are treated as empty sets. If a word
// appears in both persisted sets (an interrupted promotion), the valid entry
// wins and the conflict is logged; promotion is the only transition, so the
// valid side is always the newer evidence.
func (store *FileStore) Load(_ context.Context) error {
	validWords, err := readWordList(filepath.Join(store.directory, validWordsFile))
	if err != nil {
		return fmt.Errorf("read %s > %w", validWordsFile, err)
	}
	invalidWords, err := readWordList(filepath.Join(store.directory, invalidWordsFile))
	if err != nil {
		return fmt.Errorf("read %s > %w", invalidWordsFile, err)
	}
	validDict, err := readEntryMap(filepath.Join(store.directory, validDictFile))
	if err != nil {
		return fmt.Errorf("read %s > %w", validDictFile, err)
	}
	invalidDict, err := readEntryMap(filepath.Join(store.directory, invalidDictFile))
	if err != nil {
		return fmt.Errorf("read %s > %w", invalidDictFile, err)
	}

	store.valid = make(map[string]Entry, len(validWords))
	for _, word := range validWords {
		entry, ok := validDict[word]
		if !ok {
			entry = Entry{Word: word, ValidationStatus: StatusValid}
		}
		store.valid[word] = entry
	}

	store.invalid = make(map[string]Entry, len(invalidWords))
	for _, word := range invalidWords {
		if _, ok := store.valid[word]; ok {
			slog.Default().Warn("word found in both sets, keeping valid entry",
				"word", word)
			continue
		}
		entry, ok := invalidDict[word]
		if !ok {
			entry = Entry{Word: word, ValidationStatus: StatusInvalid}
		}
		store.invalid[word] = entry
	}

	store.loaded = true
	return nil
}

// Membership implements Store.
func (store *FileStore) Membership(word string) Membership {
	if _, ok := store.valid[word]; ok {
		return MembershipValid
	}
	if _, ok := store.invalid[word]; ok {
		return MembershipInvalid
	}
	return MembershipUnknown
}

// InvalidWords implements Store.
func (store *FileStore) InvalidWords() []string {
	result := make([]string, 0, len(store.invalid))
	for word := range store.invalid {
		result = append(result, word)
	}
	sort.Strings(result)
	return result
}

// Counts implements Store.
func (store *FileStore) Counts() (int, int) {
	return len(store.valid), len(store.invalid)
}

// AddValid implements Store.
func (store *FileStore) AddValid(_ context.Context, entry Entry) error {
	if _, ok := store.invalid[entry.Word]; ok {
		return fmt.Errorf("add of word %q present in invalid set: %w", entry.Word, ErrInvariantViolation)
	}
	if _, ok := store.valid[entry.Word]; ok {
		return nil
	}
	store.valid[entry.Word] = entry
	return nil
}

// Promote implements Store. Both map mutations happen before any I/O, so the
// in-memory transition is atomic under the single-writer discipline.
func (store *FileStore) Promote(_ context.Context, entry Entry) error {
	if _, ok := store.valid[entry.Word]; ok {
		return fmt.Errorf("promotion of word %q already in valid set: %w", entry.Word, ErrInvariantViolation)
	}
	if _, ok := store.invalid[entry.Word]; !ok {
		return fmt.Errorf("promotion of word %q missing from invalid set: %w", entry.Word, ErrInvariantViolation)
	}
	delete(store.invalid, entry.Word)
	store.valid[entry.Word] = entry
	return nil
}

// Flush implements Store, writing all four files. The valid-side files are
// written before the invalid-side ones: if the process dies in between, a
// promoted word is present in both persisted sets and Load resolves the
// conflict in favor of the valid entry.
func (store *FileStore) Flush(_ context.Context) error {
	if err := os.MkdirAll(store.directory, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := store.writeSet(validWordsFile, validDictFile, store.valid); err != nil {
		return fmt.Errorf("write valid set > %w", err)
	}
	if err := store.writeSet(invalidWordsFile, invalidDictFile, store.invalid); err != nil {
		return fmt.Errorf("write invalid set > %w", err)
	}
	return nil
}

func (store *FileStore) writeSet(wordsFile, dictFile string, entries map[string]Entry) error {
	words := make([]string, 0, len(entries))
	for word := range entries {
		words = append(words, word)
	}
	sort.Strings(words)

	var list []byte
	for _, word := range words {
		list = append(list, word...)
		list = append(list, '\n')
	}
	if err := writeFileAtomic(filepath.Join(store.directory, wordsFile), list); err != nil {
		return fmt.Errorf("writeFileAtomic(%s) > %w", wordsFile, err)
	}

	dict, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	if err := writeFileAtomic(filepath.Join(store.directory, dictFile), dict); err != nil {
		return fmt.Errorf("writeFileAtomic(%s) > %w", dictFile, err)
	}
	return nil
}

func writeFileAtomic(path string, contents []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
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
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}

func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if word := scanner.Text(); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err > %w", err)
	}
	return words, nil
}

func readEntryMap(path string) (map[string]Entry, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}
	entries := make(map[string]Entry)
	if err := json.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return entries, nil
}
