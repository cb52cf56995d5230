package wordlist

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*DBStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewDBStore(sqlx.NewDb(db, "mysql")), mock
}

func expectLoad(mock sqlmock.Sqlmock, words map[string]Status) {
	rows := sqlmock.NewRows([]string{"word", "validation_status"})
	for word, status := range words {
		rows.AddRow(word, status)
	}
	mock.ExpectQuery("SELECT word, validation_status FROM word_entries").WillReturnRows(rows)
}

func TestDBStore_Load(t *testing.T) {
	store, mock := newMockStore(t)
	expectLoad(mock, map[string]Status{
		"serendipity": StatusValid,
		"oaf":         StatusValid,
		"gronk":       StatusInvalid,
	})

	require.NoError(t, store.Load(context.Background()))

	assert.Equal(t, MembershipValid, store.Membership("serendipity"))
	assert.Equal(t, MembershipInvalid, store.Membership("gronk"))
	assert.Equal(t, MembershipUnknown, store.Membership("petrichor"))
	assert.Equal(t, []string{"gronk"}, store.InvalidWords())

	valid, invalid := store.Counts()
	assert.Equal(t, 2, valid)
	assert.Equal(t, 1, invalid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_AddValid(t *testing.T) {
	added := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		existing  map[string]Status
		entry     Entry
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "unknown word is inserted",
			entry: Entry{
				Word:      "petrichor",
				Source:    "merriam-webster",
				AddedDate: added,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO word_entries").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:     "already valid word is a no-op",
			existing: map[string]Status{"petrichor": StatusValid},
			entry:    Entry{Word: "petrichor"},
		},
		{
			name:     "word in the invalid set is rejected",
			existing: map[string]Status{"gronk": StatusInvalid},
			entry:    Entry{Word: "gronk"},
			wantErr:  ErrInvariantViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			expectLoad(mock, tt.existing)
			require.NoError(t, store.Load(context.Background()))
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			err := store.AddValid(context.Background(), tt.entry)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, MembershipValid, store.Membership(tt.entry.Word))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_Promote(t *testing.T) {
	tests := []struct {
		name      string
		existing  map[string]Status
		entry     Entry
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name:     "invalid word is promoted in a transaction",
			existing: map[string]Status{"serendipity": StatusInvalid},
			entry:    Entry{Word: "serendipity", Source: "merriam-webster"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE word_entries").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:     "already valid word is rejected",
			existing: map[string]Status{"serendipity": StatusValid},
			entry:    Entry{Word: "serendipity"},
			wantErr:  ErrInvariantViolation,
		},
		{
			name:    "unknown word is rejected",
			entry:   Entry{Word: "petrichor"},
			wantErr: ErrInvariantViolation,
		},
		{
			name:     "concurrent removal rolls back",
			existing: map[string]Status{"serendipity": StatusInvalid},
			entry:    Entry{Word: "serendipity"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE word_entries").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrInvariantViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			expectLoad(mock, tt.existing)
			require.NoError(t, store.Load(context.Background()))
			if tt.setupMock != nil {
				tt.setupMock(mock)
			}

			err := store.Promote(context.Background(), tt.entry)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, MembershipValid, store.Membership(tt.entry.Word))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBStore_FindEntry(t *testing.T) {
	added := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{
		"word", "source", "part_of_speech", "definition", "pronunciation", "etymology", "validation_status", "added_date",
	}).AddRow("serendipity", "merriam-webster", "noun", "the faculty of finding valuable things not sought for", "", "", StatusValid, added)

	mock.ExpectQuery("SELECT \\* FROM word_entries WHERE word = \\?").
		WithArgs("serendipity").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT \\* FROM word_entries WHERE word = \\?").
		WithArgs("petrichor").
		WillReturnRows(sqlmock.NewRows([]string{"word"}))

	got, err := store.FindEntry(context.Background(), "serendipity")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "noun", got.PartOfSpeech)
	assert.Equal(t, StatusValid, got.ValidationStatus)

	missing, err := store.FindEntry(context.Background(), "petrichor")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.NoError(t, mock.ExpectationsWereMet())
}
