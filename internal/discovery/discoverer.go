package discovery

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ryanjosephkamp/openlist/internal/words"
)

// Discoverer merges candidate words from multiple sources into one cleaned
// list. A failing source is logged and skipped, so one unreachable feed never
// sinks a discovery run.
type Discoverer struct {
	sources []Source
}

// NewDiscoverer creates a Discoverer over the given sources.
func NewDiscoverer(sources ...Source) *Discoverer {
	return &Discoverer{sources: sources}
}

// Discover gathers words from every source, lowercases, dedupes and drops
// everything the structural filter would reject anyway. The result is sorted.
func (d *Discoverer) Discover(ctx context.Context) ([]string, error) {
	found := make(map[string]bool)
	for _, source := range d.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sourceWords, err := source.Words(ctx)
		if err != nil {
			slog.Default().Warn("discovery source failed, skipping",
				"source", source.Name(),
				"error", err)
			continue
		}
		count := 0
		for _, word := range sourceWords {
			word = words.Normalize(word)
			if !words.IsStructurallyValid(word) {
				continue
			}
			if !found[word] {
				found[word] = true
				count++
			}
		}
		slog.Default().Info("discovery source finished",
			"source", source.Name(),
			"words", count)
	}

	result := make([]string, 0, len(found))
	for word := range found {
		result = append(result, word)
	}
	sort.Strings(result)
	return result, nil
}
