package wordlist

import (
	"context"
	"errors"
)

//go:generate mockgen -source=store.go -destination=../mocks/wordlist/mock_store.go -package=mock_wordlist

// ErrInvariantViolation reports that the valid and invalid sets are no longer
// disjoint, or that a promotion was attempted for a word in an impossible
// state. It indicates broken persisted state and must abort the run rather
// than be repaired silently.
var ErrInvariantViolation = errors.New("word set invariant violation")

// Store persists the valid and invalid word sets. Implementations must make
// AddValid and Promote atomic per word: at no observable point is a word in
// both sets or, during a promotion, in neither.
//
// The store is mutated only by the Reconciler, from a single writer.
type Store interface {
	// Load reads the persisted sets into memory.
	Load(ctx context.Context) error
	// Membership reports which set a word belongs to.
	Membership(word string) Membership
	// InvalidWords returns the words currently in the invalid set.
	InvalidWords() []string
	// Counts returns the sizes of the valid and invalid sets.
	Counts() (valid int, invalid int)
	// AddValid inserts a previously unknown word into the valid set.
	AddValid(ctx context.Context, entry Entry) error
	// Promote moves a word from the invalid set to the valid set.
	Promote(ctx context.Context, entry Entry) error
	// Flush persists any in-memory state. Implementations that write
	// through on every mutation may make this a no-op.
	Flush(ctx context.Context) error
}
