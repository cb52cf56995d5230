package dictionary

import (
	"context"
	"sync/atomic"
)

//go:generate mockgen -source=backend.go -destination=../mocks/dictionary/mock_backend.go -package=mock_dictionary

// Backend is one dictionary lookup provider in the priority chain.
//
// Lookup returns a definitive LookupResult (found or not found) or an error
// for transient failures such as timeouts, 5xx responses and rate limiting.
// The client retries transient failures; a nil-error result is never retried.
type Backend interface {
	// Name is the stable backend identifier recorded as LookupResult.SourceBackend.
	Name() string
	// Configured reports whether the backend has the credentials it needs.
	// Unconfigured backends are skipped without counting against any budget.
	Configured() bool
	Lookup(ctx context.Context, word string) (LookupResult, error)
}

// quotaCounter enforces a per-backend daily request budget. Lookups may be
// issued concurrently, so acquisition is a compare-and-swap over an atomic
// counter; the budget is never exceeded even under concurrent issuance.
type quotaCounter struct {
	limit int64
	used  atomic.Int64
}

// newQuotaCounter creates a counter with the given daily limit.
// A limit of zero or below means unlimited.
func newQuotaCounter(limit int64) *quotaCounter {
	return &quotaCounter{limit: limit}
}

// tryAcquire reserves one request against the budget, reporting false once
// the budget is exhausted.
func (q *quotaCounter) tryAcquire() bool {
	if q.limit <= 0 {
		q.used.Add(1)
		return true
	}
	for {
		used := q.used.Load()
		if used >= q.limit {
			return false
		}
		if q.used.CompareAndSwap(used, used+1) {
			return true
		}
	}
}

// Used returns how many requests have been issued so far.
func (q *quotaCounter) Used() int64 {
	return q.used.Load()
}
