package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/ryanjosephkamp/openlist/internal/dictionary"
	"github.com/ryanjosephkamp/openlist/internal/ranking"
	"github.com/ryanjosephkamp/openlist/internal/wordlist"
	"github.com/ryanjosephkamp/openlist/internal/words"
)

// Lookuper is the dictionary lookup dependency of the Runner.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (dictionary.LookupResult, error)
}

// Options configures one sweep run.
type Options struct {
	// Limit caps how many words are validated this run; zero or below means
	// no cap beyond backend budgets.
	Limit int
	// SampleMode selects candidates uniformly at random instead of by
	// priority score.
	SampleMode bool
	// Seed fixes candidate ordering for reproducible runs; zero seeds from
	// the clock.
	Seed int64
}

// RunResult summarizes a finished or interrupted run.
type RunResult struct {
	Validated     int
	Promoted      int
	StillInvalid  int
	Inconclusive  int
	Remaining     int
	Duration      time.Duration
	PromotedWords []string
	Changes       []wordlist.ChangeRecord
}

// Runner drives the validation loop: pick candidates, look each one up,
// verify, commit, and checkpoint after every word.
type Runner struct {
	store      wordlist.Store
	reconciler *wordlist.Reconciler
	lookuper   Lookuper
	verifier   *dictionary.Verifier
	checkpoint Checkpoint
}

// NewRunner creates a Runner.
func NewRunner(store wordlist.Store, reconciler *wordlist.Reconciler, lookuper Lookuper, checkpoint Checkpoint) *Runner {
	return &Runner{
		store:      store,
		reconciler: reconciler,
		lookuper:   lookuper,
		verifier:   dictionary.NewVerifier(),
		checkpoint: checkpoint,
	}
}

// Run validates words from the invalid list. Words with a verdict from an
// earlier run of this cycle are skipped, so interrupted runs resume without
// re-spending any lookup budget.
func (r *Runner) Run(ctx context.Context, opts Options) (RunResult, error) {
	started := time.Now()
	if err := r.store.Load(ctx); err != nil {
		return RunResult{}, fmt.Errorf("store.Load > %w", err)
	}
	progress, err := r.checkpoint.Load(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("checkpoint.Load > %w", err)
	}

	eligible := make([]string, 0)
	for _, word := range r.store.InvalidWords() {
		if progress.Validated(word) {
			continue
		}
		if !words.IsStructurallyValid(word) {
			continue
		}
		eligible = append(eligible, word)
	}

	candidates := r.selectCandidates(eligible, opts)
	slog.Default().Info("starting validation sweep",
		"eligible", len(eligible),
		"selected", len(candidates),
		"sample_mode", opts.SampleMode)

	result, err := r.process(ctx, candidates, &progress)
	if err != nil {
		return result, err
	}
	result.Remaining = r.countRemaining(progress)
	result.Duration = time.Since(started)
	return result, nil
}

// RunDiscovered validates words from a discovery source. Words already in
// either set are skipped; accepted words go straight to the valid set, while
// rejected unknown words are deliberately not recorded anywhere.
func (r *Runner) RunDiscovered(ctx context.Context, discovered []string, opts Options) (RunResult, error) {
	started := time.Now()
	if err := r.store.Load(ctx); err != nil {
		return RunResult{}, fmt.Errorf("store.Load > %w", err)
	}
	progress, err := r.checkpoint.Load(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("checkpoint.Load > %w", err)
	}

	eligible := make([]string, 0, len(discovered))
	for _, word := range discovered {
		word = words.Normalize(word)
		if !words.IsStructurallyValid(word) {
			continue
		}
		if r.store.Membership(word) != wordlist.MembershipUnknown {
			continue
		}
		if progress.Validated(word) {
			continue
		}
		eligible = append(eligible, word)
	}

	candidates := r.selectCandidates(eligible, opts)
	slog.Default().Info("validating discovered words",
		"discovered", len(discovered),
		"selected", len(candidates))

	result, err := r.process(ctx, candidates, &progress)
	if err != nil {
		return result, err
	}
	result.Duration = time.Since(started)
	return result, nil
}

func (r *Runner) selectCandidates(eligible []string, opts Options) []ranking.Candidate {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	prioritizer := ranking.NewPrioritizer(rand.New(rand.NewSource(seed)))
	limit := opts.Limit
	if limit <= 0 {
		limit = len(eligible)
	}
	if opts.SampleMode {
		return prioritizer.Sample(eligible, limit)
	}
	return prioritizer.Prioritize(eligible, limit)
}

// process validates each candidate in order, saving the checkpoint after
// every definitive verdict. Cancellation is honored between candidates; an
// in-flight lookup finishes or is cancelled by the same context.
func (r *Runner) process(ctx context.Context, candidates []ranking.Candidate, progress *Progress) (RunResult, error) {
	var result RunResult
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("sweep interrupted > %w", err)
		}
		word := candidate.Word

		lookup, err := r.lookuper.Lookup(ctx, word)
		if err != nil {
			return result, fmt.Errorf("lookup %q > %w", word, err)
		}
		outcome := r.verifier.Verify(word, lookup)
		if outcome == dictionary.OutcomeInconclusive {
			// No backend could answer within budget. The word keeps its
			// place in the queue for a future run.
			result.Inconclusive++
			continue
		}

		commit, err := r.reconciler.Commit(ctx, word, outcome, lookup)
		if err != nil {
			return result, fmt.Errorf("commit %q > %w", word, err)
		}

		result.Validated++
		progress.ValidatedCount++
		progress.ValidatedWords[word] = string(outcome)
		progress.Cursor++
		progress.LastRun = time.Now()
		switch {
		case outcome == dictionary.OutcomeAccept:
			result.Promoted++
			progress.PromotedCount++
			result.PromotedWords = append(result.PromotedWords, word)
			slog.Default().Info("word validated",
				"word", word,
				"outcome", outcome,
				"transition", commit.Transition,
				"source", lookup.SourceBackend)
		default:
			result.StillInvalid++
			slog.Default().Debug("word rejected",
				"word", word,
				"outcome", outcome,
				"source", lookup.SourceBackend)
		}

		// The store must be durable before the checkpoint records the
		// verdict: if the process dies in between, the word is simply
		// re-validated next run.
		if commit.Transition != wordlist.TransitionNone {
			if err := r.store.Flush(ctx); err != nil {
				return result, fmt.Errorf("store.Flush > %w", err)
			}
		}
		if err := r.checkpoint.Save(ctx, *progress); err != nil {
			return result, fmt.Errorf("checkpoint.Save > %w", err)
		}
	}

	if err := r.store.Flush(ctx); err != nil {
		return result, fmt.Errorf("store.Flush > %w", err)
	}
	result.Changes = r.reconciler.ChangeLog()
	return result, nil
}

func (r *Runner) countRemaining(progress Progress) int {
	remaining := 0
	for _, word := range r.store.InvalidWords() {
		if !progress.Validated(word) {
			remaining++
		}
	}
	return remaining
}
