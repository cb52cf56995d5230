package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, directory, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(directory, name), []byte(contents), 0644))
}

func TestFileStore_Load(t *testing.T) {
	tests := []struct {
		name            string
		setup           func(t *testing.T, directory string)
		wantValid       int
		wantInvalid     int
		wantMemberships map[string]Membership
	}{
		{
			name:        "missing files are empty sets",
			setup:       func(t *testing.T, directory string) {},
			wantValid:   0,
			wantInvalid: 0,
			wantMemberships: map[string]Membership{
				"anything": MembershipUnknown,
			},
		},
		{
			name: "words load into their sets",
			setup: func(t *testing.T, directory string) {
				writeTestFile(t, directory, validWordsFile, "apple\nbanana\n")
				writeTestFile(t, directory, invalidWordsFile, "zzxq\n")
			},
			wantValid:   2,
			wantInvalid: 1,
			wantMemberships: map[string]Membership{
				"apple":  MembershipValid,
				"banana": MembershipValid,
				"zzxq":   MembershipInvalid,
				"cherry": MembershipUnknown,
			},
		},
		{
			name: "word in both sets resolves to valid",
			setup: func(t *testing.T, directory string) {
				writeTestFile(t, directory, validWordsFile, "apple\n")
				writeTestFile(t, directory, invalidWordsFile, "apple\nzzxq\n")
			},
			wantValid:   1,
			wantInvalid: 1,
			wantMemberships: map[string]Membership{
				"apple": MembershipValid,
				"zzxq":  MembershipInvalid,
			},
		},
		{
			name: "metadata map attaches to loaded words",
			setup: func(t *testing.T, directory string) {
				writeTestFile(t, directory, validWordsFile, "apple\n")
				writeTestFile(t, directory, validDictFile,
					`{"apple":{"word":"apple","source":"merriam-webster","part_of_speech":"noun","validation_status":"valid","added_date":"2026-08-31T00:00:00Z"}}`)
			},
			wantValid:   1,
			wantInvalid: 0,
			wantMemberships: map[string]Membership{
				"apple": MembershipValid,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := t.TempDir()
			tt.setup(t, directory)

			store := NewFileStore(directory)
			require.NoError(t, store.Load(context.Background()))

			gotValid, gotInvalid := store.Counts()
			assert.Equal(t, tt.wantValid, gotValid)
			assert.Equal(t, tt.wantInvalid, gotInvalid)
			for word, want := range tt.wantMemberships {
				assert.Equal(t, want, store.Membership(word), "membership of %q", word)
			}
		})
	}
}

func TestFileStore_AddValid(t *testing.T) {
	tests := []struct {
		name           string
		invalidWords   string
		validWords     string
		entry          Entry
		wantErr        error
		wantMembership Membership
	}{
		{
			name:           "unknown word becomes valid",
			entry:          Entry{Word: "serendipity", Source: "merriam-webster", ValidationStatus: StatusValid},
			wantMembership: MembershipValid,
		},
		{
			name:           "already valid word is a no-op",
			validWords:     "apple\n",
			entry:          Entry{Word: "apple", ValidationStatus: StatusValid},
			wantMembership: MembershipValid,
		},
		{
			name:           "word in invalid set is rejected",
			invalidWords:   "zzxq\n",
			entry:          Entry{Word: "zzxq", ValidationStatus: StatusValid},
			wantErr:        ErrInvariantViolation,
			wantMembership: MembershipInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := t.TempDir()
			if tt.validWords != "" {
				writeTestFile(t, directory, validWordsFile, tt.validWords)
			}
			if tt.invalidWords != "" {
				writeTestFile(t, directory, invalidWordsFile, tt.invalidWords)
			}
			store := NewFileStore(directory)
			require.NoError(t, store.Load(context.Background()))

			err := store.AddValid(context.Background(), tt.entry)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantMembership, store.Membership(tt.entry.Word))
		})
	}
}

func TestFileStore_Promote(t *testing.T) {
	tests := []struct {
		name           string
		invalidWords   string
		validWords     string
		entry          Entry
		wantErr        error
		wantMembership Membership
	}{
		{
			name:           "invalid word moves to valid",
			invalidWords:   "google\n",
			entry:          Entry{Word: "google", Source: "merriam-webster", ValidationStatus: StatusValid},
			wantMembership: MembershipValid,
		},
		{
			name:           "unknown word cannot be promoted",
			entry:          Entry{Word: "cherry", ValidationStatus: StatusValid},
			wantErr:        ErrInvariantViolation,
			wantMembership: MembershipUnknown,
		},
		{
			name:           "already valid word cannot be promoted",
			validWords:     "apple\n",
			entry:          Entry{Word: "apple", ValidationStatus: StatusValid},
			wantErr:        ErrInvariantViolation,
			wantMembership: MembershipValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directory := t.TempDir()
			if tt.validWords != "" {
				writeTestFile(t, directory, validWordsFile, tt.validWords)
			}
			if tt.invalidWords != "" {
				writeTestFile(t, directory, invalidWordsFile, tt.invalidWords)
			}
			store := NewFileStore(directory)
			require.NoError(t, store.Load(context.Background()))

			err := store.Promote(context.Background(), tt.entry)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantMembership, store.Membership(tt.entry.Word))
		})
	}
}

func TestFileStore_FlushRoundTrip(t *testing.T) {
	directory := t.TempDir()
	writeTestFile(t, directory, invalidWordsFile, "google\nzzxq\n")

	store := NewFileStore(directory)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))

	addedDate := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Promote(ctx, Entry{
		Word:             "google",
		Source:           "merriam-webster",
		PartOfSpeech:     "verb",
		Definition:       "to use the Google search engine",
		ValidationStatus: StatusValid,
		AddedDate:        addedDate,
	}))
	require.NoError(t, store.AddValid(ctx, Entry{
		Word:             "serendipity",
		Source:           "free-dictionary",
		ValidationStatus: StatusValid,
		AddedDate:        addedDate,
	}))
	require.NoError(t, store.Flush(ctx))

	reloaded := NewFileStore(directory)
	require.NoError(t, reloaded.Load(ctx))

	assert.Equal(t, MembershipValid, reloaded.Membership("google"))
	assert.Equal(t, MembershipValid, reloaded.Membership("serendipity"))
	assert.Equal(t, MembershipInvalid, reloaded.Membership("zzxq"))
	gotValid, gotInvalid := reloaded.Counts()
	assert.Equal(t, 2, gotValid)
	assert.Equal(t, 1, gotInvalid)
	assert.Equal(t, []string{"zzxq"}, reloaded.InvalidWords())

	// The published list is sorted plain text, one word per line.
	contents, err := os.ReadFile(filepath.Join(directory, validWordsFile))
	require.NoError(t, err)
	assert.Equal(t, "google\nserendipity\n", string(contents))
}
