package wordlist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ryanjosephkamp/openlist/internal/dictionary"
)

// Transition describes how a commit changed a word's set membership.
type Transition string

const (
	// TransitionPromoted moved a word from the invalid set to the valid set.
	TransitionPromoted Transition = "invalid_to_valid"
	// TransitionAdded inserted a newly discovered word into the valid set.
	TransitionAdded Transition = "new_to_valid"
	// TransitionNone left both sets untouched.
	TransitionNone Transition = "none"
)

// ChangeRecord is one committed set change, emitted at run end for the
// external changelog and statistics generators.
type ChangeRecord struct {
	Word       string     `yaml:"word"`
	Transition Transition `yaml:"transition"`
	Source     string     `yaml:"source"`
	Timestamp  time.Time  `yaml:"timestamp"`
}

// CommitResult summarizes one commit.
type CommitResult struct {
	Transition Transition
}

// Reconciler is the only component allowed to mutate the word sets. It turns
// verified lookup outcomes into set transitions while enforcing the set
// invariants: the sets stay disjoint, valid is terminal, and rejected unknown
// words are not recorded anywhere (recording every discovery-noise token
// would grow the invalid set without bound).
type Reconciler struct {
	store Store
	now   func() time.Time

	changeLog []ChangeRecord
}

// NewReconciler creates a Reconciler over the given store.
func NewReconciler(store Store) *Reconciler {
	return &Reconciler{
		store: store,
		now:   time.Now,
	}
}

// Commit applies a verified outcome for a word. It is safe to call with any
// outcome: non-accept outcomes and words already valid are no-ops. An
// ErrInvariantViolation from the store is fatal and must abort the run.
func (r *Reconciler) Commit(ctx context.Context, word string, outcome dictionary.Outcome, result dictionary.LookupResult) (CommitResult, error) {
	if outcome != dictionary.OutcomeAccept {
		// Inconclusive lookups and rejections change nothing: a word from
		// the invalid list stays there, an unknown word stays unknown.
		return CommitResult{Transition: TransitionNone}, nil
	}

	membership := r.store.Membership(word)
	if membership == MembershipValid {
		// Re-validating a valid word never changes membership.
		return CommitResult{Transition: TransitionNone}, nil
	}

	entry := Entry{
		Word:             word,
		Source:           result.SourceBackend,
		PartOfSpeech:     result.PartOfSpeech,
		Definition:       result.Definition,
		Pronunciation:    result.Pronunciation,
		Etymology:        result.Etymology,
		ValidationStatus: StatusValid,
		AddedDate:        r.now(),
	}

	var transition Transition
	switch membership {
	case MembershipInvalid:
		if err := r.store.Promote(ctx, entry); err != nil {
			return CommitResult{}, fmt.Errorf("store.Promote > %w", err)
		}
		transition = TransitionPromoted
	default:
		if err := r.store.AddValid(ctx, entry); err != nil {
			return CommitResult{}, fmt.Errorf("store.AddValid > %w", err)
		}
		transition = TransitionAdded
	}

	record := ChangeRecord{
		Word:       word,
		Transition: transition,
		Source:     result.SourceBackend,
		Timestamp:  entry.AddedDate,
	}
	r.changeLog = append(r.changeLog, record)
	slog.Default().Info("word committed to valid set",
		"word", word,
		"transition", transition,
		"source", result.SourceBackend)

	return CommitResult{Transition: transition}, nil
}

// ChangeLog returns the committed changes of this run, in commit order.
func (r *Reconciler) ChangeLog() []ChangeRecord {
	return r.changeLog
}
