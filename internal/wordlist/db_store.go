package wordlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
)

// DBStore implements Store on MySQL. All words live in one word_entries
// table keyed by word, with the set encoded in the validation_status column;
// a promotion is a single UPDATE inside a transaction, so the disjointness
// invariant holds by construction.
type DBStore struct {
	db *sqlx.DB

	membership map[string]Membership
}

// NewDBStore creates a DBStore using the given connection.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{
		db:         db,
		membership: make(map[string]Membership),
	}
}

// Load implements Store, caching word membership for the run. Metadata stays
// in the database; only the word-to-set mapping is held in memory.
func (store *DBStore) Load(ctx context.Context) error {
	rows := []struct {
		Word   string `db:"word"`
		Status Status `db:"validation_status"`
	}{}
	if err := store.db.SelectContext(ctx, &rows,
		"SELECT word, validation_status FROM word_entries"); err != nil {
		return fmt.Errorf("db.SelectContext(word_entries) > %w", err)
	}

	store.membership = make(map[string]Membership, len(rows))
	for _, row := range rows {
		switch row.Status {
		case StatusValid:
			store.membership[row.Word] = MembershipValid
		case StatusInvalid:
			store.membership[row.Word] = MembershipInvalid
		}
	}
	return nil
}

// Membership implements Store.
func (store *DBStore) Membership(word string) Membership {
	return store.membership[word]
}

// InvalidWords implements Store.
func (store *DBStore) InvalidWords() []string {
	var result []string
	for word, membership := range store.membership {
		if membership == MembershipInvalid {
			result = append(result, word)
		}
	}
	sort.Strings(result)
	return result
}

// Counts implements Store.
func (store *DBStore) Counts() (int, int) {
	var valid, invalid int
	for _, membership := range store.membership {
		switch membership {
		case MembershipValid:
			valid++
		case MembershipInvalid:
			invalid++
		}
	}
	return valid, invalid
}

// FindEntry returns the stored entry for a word, or nil if not present.
func (store *DBStore) FindEntry(ctx context.Context, word string) (*Entry, error) {
	var entry Entry
	err := store.db.GetContext(ctx, &entry,
		"SELECT * FROM word_entries WHERE word = ?", word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(word_entry) > %w", err)
	}
	return &entry, nil
}

// AddValid implements Store.
func (store *DBStore) AddValid(ctx context.Context, entry Entry) error {
	if store.membership[entry.Word] == MembershipInvalid {
		return fmt.Errorf("add of word %q present in invalid set: %w", entry.Word, ErrInvariantViolation)
	}
	if store.membership[entry.Word] == MembershipValid {
		return nil
	}

	entry.ValidationStatus = StatusValid
	if _, err := store.db.NamedExecContext(ctx,
		`INSERT INTO word_entries (word, source, part_of_speech, definition, pronunciation, etymology, validation_status, added_date)
		VALUES (:word, :source, :part_of_speech, :definition, :pronunciation, :etymology, :validation_status, :added_date)`,
		entry); err != nil {
		return fmt.Errorf("db.NamedExecContext(insert word_entry) > %w", err)
	}
	store.membership[entry.Word] = MembershipValid
	return nil
}

// Promote implements Store.
func (store *DBStore) Promote(ctx context.Context, entry Entry) error {
	switch store.membership[entry.Word] {
	case MembershipValid:
		return fmt.Errorf("promotion of word %q already in valid set: %w", entry.Word, ErrInvariantViolation)
	case MembershipUnknown:
		return fmt.Errorf("promotion of word %q missing from invalid set: %w", entry.Word, ErrInvariantViolation)
	}

	tx, err := store.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx,
		`UPDATE word_entries
		SET source = ?, part_of_speech = ?, definition = ?, pronunciation = ?, etymology = ?, validation_status = ?, added_date = ?
		WHERE word = ? AND validation_status = ?`,
		entry.Source, entry.PartOfSpeech, entry.Definition, entry.Pronunciation, entry.Etymology,
		StatusValid, entry.AddedDate, entry.Word, StatusInvalid)
	if err != nil {
		return fmt.Errorf("tx.ExecContext(promote word_entry) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected > %w", err)
	}
	if affected != 1 {
		return fmt.Errorf("promotion of word %q updated %d rows: %w", entry.Word, affected, ErrInvariantViolation)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit > %w", err)
	}

	store.membership[entry.Word] = MembershipValid
	return nil
}

// Flush implements Store. DBStore writes through on every mutation.
func (store *DBStore) Flush(context.Context) error {
	return nil
}
