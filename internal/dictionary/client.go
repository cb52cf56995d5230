package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/avast/retry-go"
)

// BackendBudget pairs a backend with its daily request quota.
type BackendBudget struct {
	Backend Backend
	// DailyLimit caps requests per run; zero or below means unlimited.
	DailyLimit int64
}

// Client orchestrates lookups over an ordered list of backends, from most to
// least authoritative. The first backend that produces a definitive answer
// wins; transient failures and exhausted budgets fall through to the next
// backend. If no backend can answer, the result is inconclusive.
type Client struct {
	backends []Backend
	quotas   map[string]*quotaCounter
	policy   RetryPolicy

	mu          sync.Mutex
	unavailable map[string]bool
}

// NewClient creates a Client querying the given backends in order.
func NewClient(budgets []BackendBudget, policy RetryPolicy) *Client {
	client := &Client{
		quotas:      make(map[string]*quotaCounter, len(budgets)),
		policy:      policy,
		unavailable: make(map[string]bool),
	}
	for _, budget := range budgets {
		client.backends = append(client.backends, budget.Backend)
		client.quotas[budget.Backend.Name()] = newQuotaCounter(budget.DailyLimit)
	}
	return client
}

// Lookup queries the backend chain for a word. The returned result is
// definitive (found or not found) unless Inconclusive is set, which happens
// when every backend was unconfigured, out of budget or unavailable. An error
// is returned only for context cancellation.
func (client *Client) Lookup(ctx context.Context, word string) (LookupResult, error) {
	for _, backend := range client.backends {
		name := backend.Name()
		if client.isUnavailable(name) {
			continue
		}
		if !backend.Configured() {
			continue
		}
		if !client.quotas[name].tryAcquire() {
			slog.Default().Debug("backend budget exhausted, trying next backend",
				"backend", name,
				"word", word)
			continue
		}

		result, err := client.lookupWithRetry(ctx, backend, word)
		if err != nil {
			if ctx.Err() != nil {
				return LookupResult{}, fmt.Errorf("lookup cancelled: %w", ctx.Err())
			}
			// Retries exhausted on transient failures: the backend is down,
			// not the word invalid. Skip it for the rest of the run.
			client.markUnavailable(name)
			slog.Default().Warn("backend unavailable for remainder of run",
				"backend", name,
				"word", word,
				"error", err)
			continue
		}

		result.Word = word
		result.SourceBackend = name
		return result, nil
	}

	return LookupResult{Word: word, Inconclusive: true}, nil
}

func (client *Client) lookupWithRetry(ctx context.Context, backend Backend, word string) (LookupResult, error) {
	var result LookupResult
	if err := retry.Do(
		func() error {
			response, err := backend.Lookup(ctx, word)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.policy.MaxAttempts),
		retry.Delay(client.policy.InitialBackoff),
		retry.MaxDelay(client.policy.MaxBackoff),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	); err != nil {
		return LookupResult{}, fmt.Errorf("backend %s lookup > %w", backend.Name(), err)
	}
	return result, nil
}

// Used reports how many requests have been issued for a backend this run.
func (client *Client) Used(backendName string) int64 {
	quota, ok := client.quotas[backendName]
	if !ok {
		return 0
	}
	return quota.Used()
}

func (client *Client) isUnavailable(name string) bool {
	client.mu.Lock()
	defer client.mu.Unlock()
	return client.unavailable[name]
}

func (client *Client) markUnavailable(name string) {
	client.mu.Lock()
	defer client.mu.Unlock()
	client.unavailable[name] = true
}
